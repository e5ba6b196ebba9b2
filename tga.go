package texdump

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	tgaTypeTrueColor = 2
	tgaTypeGrayscale = 3
)

// tgaHeader is the 18-byte TGA file header.
type tgaHeader struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapStart   uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8
	ImageDescriptor uint8
}

type tgaFormat struct {
	imageType  uint8
	pixelDepth uint8
}

var tgaFormats = map[PixelEncoding]tgaFormat{
	EncodingAlpha8: {imageType: tgaTypeGrayscale, pixelDepth: 8},
	EncodingRGB24:  {imageType: tgaTypeTrueColor, pixelDepth: 24},
	EncodingRGBA32: {imageType: tgaTypeTrueColor, pixelDepth: 32},
	EncodingARGB32: {imageType: tgaTypeTrueColor, pixelDepth: 32},
	EncodingBGRA32: {imageType: tgaTypeTrueColor, pixelDepth: 32},
}

func makeTGAHeader(width, height uint32, e PixelEncoding) (*tgaHeader, error) {
	f, ok := tgaFormats[e]
	if !ok {
		return nil, fmt.Errorf("%w: TGA: %s", ErrWrongContainer, e)
	}

	w, err := u16FromU32(width)
	if err != nil {
		return nil, fmt.Errorf("%w: width %d", err, width)
	}
	h, err := u16FromU32(height)
	if err != nil {
		return nil, fmt.Errorf("%w: height %d", err, height)
	}

	hdr := &tgaHeader{
		ImageType:  f.imageType,
		Width:      w,
		Height:     h,
		PixelDepth: f.pixelDepth,
	}
	// low nibble of the descriptor is the number of alpha bits
	if f.pixelDepth == 32 {
		hdr.ImageDescriptor = 8
	}

	return hdr, nil
}

// encodeTGA writes one file per planned mip level. All level boundaries are
// checked against the payload before any output is built.
func encodeTGA(tex *Texture) ([]Output, error) {
	f, ok := tgaFormats[tex.Encoding]
	if !ok {
		return nil, fmt.Errorf("%w: TGA: %s", ErrWrongContainer, tex.Encoding)
	}

	// lower levels fit in a TGA header once the top level does
	if _, err := makeTGAHeader(tex.Width, tex.Height, tex.Encoding); err != nil {
		return nil, err
	}

	data, err := convertChannels(tex.Encoding, tex.Data)
	if err != nil {
		return nil, err
	}

	levels := PlanMipmaps(tex.Width, tex.Height, tex.MipMap, uint32(f.pixelDepth))
	total := 0
	for _, level := range levels {
		if level.Size > math.MaxInt-total {
			return nil, fmt.Errorf("%w: mip chain of %dx%d", ErrSizeOverflow, tex.Width, tex.Height)
		}
		total += level.Size
	}
	if total > len(data) {
		return nil, fmt.Errorf("%w: need %d bytes for %d levels, have %d", ErrPayloadTooShort, total, len(levels), len(data))
	}
	if total < len(data) {
		return nil, fmt.Errorf("%w: %d bytes left after %d levels", ErrPayloadRemainder, len(data)-total, len(levels))
	}

	outputs := make([]Output, 0, len(levels))
	offset := 0
	for _, level := range levels {
		hdr, err := makeTGAHeader(level.Width, level.Height, tex.Encoding)
		if err != nil {
			return nil, err
		}

		file, err := pack(binary.LittleEndian, hdr, data[offset:offset+level.Size])
		if err != nil {
			return nil, err
		}
		offset += level.Size

		name := tex.Name
		if len(levels) > 1 {
			name = fmt.Sprintf("%s_mip_%d", tex.Name, level.Index)
		}
		outputs = append(outputs, newOutput(name, ContainerTGA, level.Index, file))
	}

	return outputs, nil
}
