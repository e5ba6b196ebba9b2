package texdump

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/bcn"
)

// makeDDSHeader builds the DDS header for a texture. The payload is not
// inspected: compressed payloads already carry the whole mip chain.
func makeDDSHeader(width, height uint32, e PixelEncoding, mipmap bool) (*bcn.DDSHeader, error) {
	f, ok := ddsFormats[e]
	if !ok {
		return nil, fmt.Errorf("%w: DDS: %s", ErrWrongContainer, e)
	}

	flags := uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat)
	caps := uint32(bcn.DDSCapsTexture)

	hdr := &bcn.DDSHeader{
		Size:   bcn.DDSHeaderSize,
		Height: height,
		Width:  width,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	hdr.PixelFormat.Flags = f.flags
	hdr.PixelFormat.FourCC = f.fourCC
	hdr.PixelFormat.RGBBitCount = f.bitCount
	hdr.PixelFormat.RBitMask = f.rMask
	hdr.PixelFormat.GBitMask = f.gMask
	hdr.PixelFormat.BBitMask = f.bMask
	hdr.PixelFormat.ABitMask = f.aMask

	if mipmap {
		flags |= bcn.DDSFlagMipmapCount
		caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
		mips, err := u32FromInt(MipMapCount(width, height))
		if err != nil {
			return nil, err
		}
		hdr.MipMapCount = mips
	}

	size, err := ddsLinearSize(width, height, e, f)
	if err != nil {
		return nil, err
	}
	flags |= bcn.DDSFlagLinearSize
	hdr.PitchOrLinearSize = size

	hdr.Flags = flags
	hdr.Caps = caps

	return hdr, nil
}

// ddsLinearSize returns the top level byte size: 8 bits per pixel for FourCC
// formats (4 for DXT1), the channel bit count otherwise.
func ddsLinearSize(width, height uint32, e PixelEncoding, f ddsFormat) (uint32, error) {
	size := uint64(width) * uint64(height)
	switch {
	case e == EncodingDXT1:
		size /= 2
	case !f.compressed():
		size = size * uint64(f.bitCount) / 8
	}

	if size > maxUint32 {
		return 0, ErrSizeOverflow
	}

	return uint32(size), nil
}

// encodeDDS writes the magic, header and untouched payload.
func encodeDDS(tex *Texture) ([]Output, error) {
	hdr, err := makeDDSHeader(tex.Width, tex.Height, tex.Encoding, tex.MipMap)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(4 + int(bcn.DDSHeaderSize) + len(tex.Data))
	if err := bcn.WriteDDSMagic(&buf); err != nil {
		return nil, err
	}
	if err := bcn.WriteDDSHeader(&buf, hdr); err != nil {
		return nil, err
	}
	buf.Write(tex.Data)

	return []Output{newOutput(tex.Name, ContainerDDS, 0, buf.Bytes())}, nil
}
