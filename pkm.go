package texdump

import (
	"encoding/binary"
	"fmt"
)

// pkmMagic is "PKM 10" followed by a zero format word (ETC1 RGB, no mipmaps).
var pkmMagic = [8]byte{'P', 'K', 'M', ' ', '1', '0', 0, 0}

// pkmHeader is the 16-byte big-endian PKM header.
type pkmHeader struct {
	Magic         [8]byte
	TextureWidth  uint16
	TextureHeight uint16
	Width         uint16
	Height        uint16
}

// pkmFormats lists encodings the PKM writer accepts. No encoding selects PKM
// automatically; it is reached through an explicit container request.
var pkmFormats = map[PixelEncoding]struct{}{
	EncodingETCRGB4: {},
}

// pkmRoundUp rounds a dimension up to a whole number of 4x4 blocks.
func pkmRoundUp(dim uint32) uint32 {
	return ((dim - 1) | 3) + 1
}

func makePKMHeader(width, height uint32, e PixelEncoding) (*pkmHeader, error) {
	if _, ok := pkmFormats[e]; !ok {
		return nil, fmt.Errorf("%w: PKM: %s", ErrWrongContainer, e)
	}

	dims := [4]uint32{pkmRoundUp(width), pkmRoundUp(height), width, height}
	var out [4]uint16
	for i, d := range dims {
		v, err := u16FromU32(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %dx%d", err, width, height)
		}
		out[i] = v
	}

	return &pkmHeader{
		Magic:         pkmMagic,
		TextureWidth:  out[0],
		TextureHeight: out[1],
		Width:         out[2],
		Height:        out[3],
	}, nil
}

func encodePKM(tex *Texture) ([]Output, error) {
	hdr, err := makePKMHeader(tex.Width, tex.Height, tex.Encoding)
	if err != nil {
		return nil, err
	}

	data, err := pack(binary.BigEndian, hdr, tex.Data)
	if err != nil {
		return nil, err
	}

	return []Output{newOutput(tex.Name, ContainerPKM, 0, data)}, nil
}
