package texdump

import "github.com/woozymasta/bcn"

// ddsPFAlpha marks alpha-only pixel data (DDPF_ALPHA).
const ddsPFAlpha = 0x2

// ddsFormat holds the pixel-format block fields for one encoding.
type ddsFormat struct {
	flags    uint32
	fourCC   uint32
	bitCount uint32
	rMask    uint32
	gMask    uint32
	bMask    uint32
	aMask    uint32
}

func (f ddsFormat) compressed() bool {
	return f.fourCC != 0
}

var ddsFormats = map[PixelEncoding]ddsFormat{
	EncodingAlpha8: {
		flags:    ddsPFAlpha,
		bitCount: 8,
		aMask:    0xff,
	},
	EncodingRGB24: {
		flags:    uint32(bcn.DDSPFRGB),
		bitCount: 24,
		rMask:    0xff0000,
		gMask:    0x00ff00,
		bMask:    0x0000ff,
	},
	EncodingRGBA32: {
		flags:    uint32(bcn.DDSPFRGB | bcn.DDSPFAlphaPixels),
		bitCount: 32,
		rMask:    0x000000ff,
		gMask:    0x0000ff00,
		bMask:    0x00ff0000,
		aMask:    0xff000000,
	},
	EncodingBGRA32: {
		flags:    uint32(bcn.DDSPFRGB | bcn.DDSPFAlphaPixels),
		bitCount: 32,
		rMask:    0x00ff0000,
		gMask:    0x0000ff00,
		bMask:    0x000000ff,
		aMask:    0xff000000,
	},
	EncodingARGB32: {
		flags:    uint32(bcn.DDSPFRGB | bcn.DDSPFAlphaPixels),
		bitCount: 32,
		rMask:    0x0000ff00,
		gMask:    0x00ff0000,
		bMask:    0xff000000,
		aMask:    0x000000ff,
	},
	EncodingARGB4444: {
		flags:    uint32(bcn.DDSPFRGB | bcn.DDSPFAlphaPixels),
		bitCount: 16,
		rMask:    0x0f00,
		gMask:    0x00f0,
		bMask:    0x000f,
		aMask:    0xf000,
	},
	EncodingRGB565: {
		flags:    uint32(bcn.DDSPFRGB),
		bitCount: 16,
		rMask:    0xf800,
		gMask:    0x07e0,
		bMask:    0x001f,
	},
	EncodingDXT1: {
		flags:  uint32(bcn.DDSPFFourCC),
		fourCC: makeFourCC('D', 'X', 'T', '1'),
	},
	EncodingDXT5: {
		flags:  uint32(bcn.DDSPFFourCC),
		fourCC: makeFourCC('D', 'X', 'T', '5'),
	},
}

// detectDDSFormat maps a pixel-format block back to the encoding that
// produced it, with a printable format name.
func detectDDSFormat(pf bcn.DDSPixelFormat) (PixelEncoding, string) {
	if (pf.Flags & bcn.DDSPFFourCC) != 0 {
		fourCCStr := intToFourCC(pf.FourCC)
		switch fourCCStr {
		case "DXT1":
			return EncodingDXT1, fourCCStr
		case "DXT5":
			return EncodingDXT5, fourCCStr
		default:
			return EncodingUnknown, fourCCStr
		}
	}

	for e, f := range ddsFormats {
		if f.compressed() {
			continue
		}
		if pf.Flags == f.flags && pf.RGBBitCount == f.bitCount &&
			pf.RBitMask == f.rMask && pf.GBitMask == f.gMask &&
			pf.BBitMask == f.bMask && pf.ABitMask == f.aMask {
			return e, e.String()
		}
	}

	return EncodingUnknown, "UNKNOWN"
}

func intToFourCC(value uint32) string {
	return string([]byte{
		byte(value & 0xff),
		byte((value >> 8) & 0xff),
		byte((value >> 16) & 0xff),
		byte((value >> 24) & 0xff),
	})
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}
