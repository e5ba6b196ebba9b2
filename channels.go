package texdump

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// convertChannels returns the payload in the channel order the TGA writer
// expects. ARGB32 and BGRA32 are rewritten into a new slice; every other
// encoding is returned as-is and data is never modified.
func convertChannels(e PixelEncoding, data []byte) ([]byte, error) {
	var convert func(uint32) uint32
	switch e {
	case EncodingARGB32:
		convert = argbToRGBA
	case EncodingBGRA32:
		convert = swapRedBlue
	default:
		return data, nil
	}

	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 4", ErrPixelStride, len(data))
	}

	out := make([]byte, len(data))
	for i := 0; i < len(data); i += 4 {
		px := binary.BigEndian.Uint32(data[i : i+4])
		binary.BigEndian.PutUint32(out[i:i+4], convert(px))
	}

	return out, nil
}

// argbToRGBA moves alpha from the high byte to the low byte.
func argbToRGBA(px uint32) uint32 {
	return bits.RotateLeft32(px, 8)
}

// swapRedBlue exchanges the first and third byte, keeping green and alpha.
func swapRedBlue(px uint32) uint32 {
	out := px & 0x00ff00ff
	out |= (px & 0xff000000) >> 16
	out |= (px & 0x0000ff00) << 16
	return out
}
