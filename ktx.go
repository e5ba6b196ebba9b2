package texdump

import (
	"encoding/binary"
	"fmt"
)

// KTX 1.1 constants.
const (
	ktxEndianness = 0x04030201

	glRGB  = 0x1907
	glRGBA = 0x1908

	glCompressedRGBPVRTC4BPPV1  = 0x8C00
	glCompressedRGBPVRTC2BPPV1  = 0x8C01
	glCompressedRGBAPVRTC4BPPV1 = 0x8C02
	glCompressedRGBAPVRTC2BPPV1 = 0x8C03
	glATCRGBAMD                 = 0x8C92
	glATCRGBAExplicitAlphaAMD   = 0x8C93
	glETC1RGB8OES               = 0x8D64
)

var ktxIdentifier = [12]byte{0xAB, 'K', 'T', 'X', ' ', '1', '1', 0xBB, '\r', '\n', 0x1A, '\n'}

// ktxHeader is the fixed 64-byte KTX header.
type ktxHeader struct {
	Identifier            [12]byte
	Endianness            uint32
	GLType                uint32
	GLTypeSize            uint32
	GLFormat              uint32
	GLInternalFormat      uint32
	GLBaseInternalFormat  uint32
	PixelWidth            uint32
	PixelHeight           uint32
	PixelDepth            uint32
	NumberOfArrayElements uint32
	NumberOfFaces         uint32
	NumberOfMipmapLevels  uint32
	BytesOfKeyValueData   uint32
}

type ktxFormat struct {
	internalFormat uint32
	baseFormat     uint32
}

var ktxFormats = map[PixelEncoding]ktxFormat{
	EncodingPVRTCRGB2:  {internalFormat: glCompressedRGBPVRTC2BPPV1, baseFormat: glRGB},
	EncodingPVRTCRGBA2: {internalFormat: glCompressedRGBAPVRTC2BPPV1, baseFormat: glRGBA},
	EncodingPVRTCRGB4:  {internalFormat: glCompressedRGBPVRTC4BPPV1, baseFormat: glRGB},
	EncodingPVRTCRGBA4: {internalFormat: glCompressedRGBAPVRTC4BPPV1, baseFormat: glRGBA},
	EncodingATCRGB4:    {internalFormat: glATCRGBAMD, baseFormat: glRGB},
	EncodingATCRGBA8:   {internalFormat: glATCRGBAExplicitAlphaAMD, baseFormat: glRGBA},
	EncodingETCRGB4:    {internalFormat: glETC1RGB8OES, baseFormat: glRGB},
}

// makeKTXHeader builds the header for a compressed texture. Fields are
// written big-endian, so readers on little-endian hosts see a swapped
// endianness marker and swap the header.
func makeKTXHeader(width, height uint32, e PixelEncoding, mipmap bool) (*ktxHeader, error) {
	f, ok := ktxFormats[e]
	if !ok {
		return nil, fmt.Errorf("%w: KTX: %s", ErrWrongContainer, e)
	}

	levels := 1
	if mipmap {
		levels = MipMapCount(width, height)
	}
	mips, err := u32FromInt(levels)
	if err != nil {
		return nil, err
	}

	return &ktxHeader{
		Identifier:           ktxIdentifier,
		Endianness:           ktxEndianness,
		GLTypeSize:           1,
		GLInternalFormat:     f.internalFormat,
		GLBaseInternalFormat: f.baseFormat,
		PixelWidth:           width,
		PixelHeight:          height,
		NumberOfFaces:        1,
		NumberOfMipmapLevels: mips,
	}, nil
}

func encodeKTX(tex *Texture) ([]Output, error) {
	hdr, err := makeKTXHeader(tex.Width, tex.Height, tex.Encoding, tex.MipMap)
	if err != nil {
		return nil, err
	}

	// The image size field carries the pixel width, not the byte length of
	// the first level. Readers that trust imageSize will misread the data.
	var imageSize [4]byte
	binary.BigEndian.PutUint32(imageSize[:], hdr.PixelWidth)

	data, err := pack(binary.BigEndian, hdr, imageSize[:], tex.Data)
	if err != nil {
		return nil, err
	}

	return []Output{newOutput(tex.Name, ContainerKTX, 0, data)}, nil
}
