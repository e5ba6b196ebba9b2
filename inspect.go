package texdump

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

// Info describes a container file header.
type Info struct {
	Container Container
	Width     uint32
	Height    uint32
	MipMaps   uint32
	// Encoding is the pixel encoding the header maps back to, EncodingUnknown
	// when the header was not written by this package.
	Encoding PixelEncoding
	Format   string
}

// InspectFile reads the header of a container file.
func InspectFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Inspect(f)
}

// Inspect identifies the container in r from its leading bytes and decodes
// the header. TGA has no magic and is assumed when nothing else matches.
func Inspect(r io.Reader) (*Info, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(len(ktxIdentifier))
	if err != nil && len(peek) < 4 {
		return nil, fmt.Errorf("%w: %v", ErrReadHeader, err)
	}

	switch {
	case string(peek[:4]) == "DDS ":
		return inspectDDS(br)
	case bytes.HasPrefix(peek, ktxIdentifier[:]):
		return inspectKTX(br)
	case bytes.HasPrefix(peek, pkmMagic[:4]):
		return inspectPKM(br)
	default:
		return inspectTGA(br)
	}
}

func inspectDDS(r io.Reader) (*Info, error) {
	header, err := bcn.ReadDDSHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: DDS: %v", ErrReadHeader, err)
	}

	mipMapCount := uint32(1)
	if (header.Caps&bcn.DDSCapsMipmap) != 0 && header.MipMapCount > 0 {
		mipMapCount = header.MipMapCount
	}

	e, name := detectDDSFormat(header.PixelFormat)
	return &Info{
		Container: ContainerDDS,
		Width:     header.Width,
		Height:    header.Height,
		MipMaps:   mipMapCount,
		Encoding:  e,
		Format:    name,
	}, nil
}

func inspectKTX(r io.Reader) (*Info, error) {
	var raw [64]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("%w: KTX: %v", ErrReadHeader, err)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if binary.BigEndian.Uint32(raw[12:16]) == ktxEndianness {
		order = binary.BigEndian
	}

	var hdr ktxHeader
	if err := binary.Read(bytes.NewReader(raw[:]), order, &hdr); err != nil {
		return nil, fmt.Errorf("%w: KTX: %v", ErrReadHeader, err)
	}

	info := &Info{
		Container: ContainerKTX,
		Width:     hdr.PixelWidth,
		Height:    hdr.PixelHeight,
		MipMaps:   max(hdr.NumberOfMipmapLevels, 1),
		Format:    fmt.Sprintf("glInternalFormat 0x%04X", hdr.GLInternalFormat),
	}
	for e, f := range ktxFormats {
		if f.internalFormat == hdr.GLInternalFormat {
			info.Encoding = e
			info.Format = e.String()
			break
		}
	}

	return info, nil
}

func inspectPKM(r io.Reader) (*Info, error) {
	var hdr pkmHeader
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: PKM: %v", ErrReadHeader, err)
	}

	info := &Info{
		Container: ContainerPKM,
		Width:     uint32(hdr.Width),
		Height:    uint32(hdr.Height),
		MipMaps:   1,
		Format:    "ETC1",
	}
	if hdr.Magic == pkmMagic {
		info.Encoding = EncodingETCRGB4
	}

	return info, nil
}

func inspectTGA(r io.Reader) (*Info, error) {
	var hdr tgaHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: TGA: %v", ErrReadHeader, err)
	}
	if hdr.ColorMapType != 0 || (hdr.ImageType != tgaTypeTrueColor && hdr.ImageType != tgaTypeGrayscale) {
		return nil, fmt.Errorf("%w: image type %d", ErrUnknownContainer, hdr.ImageType)
	}

	info := &Info{
		Container: ContainerTGA,
		Width:     uint32(hdr.Width),
		Height:    uint32(hdr.Height),
		MipMaps:   1,
	}
	switch {
	case hdr.ImageType == tgaTypeGrayscale && hdr.PixelDepth == 8:
		info.Encoding = EncodingAlpha8
	case hdr.PixelDepth == 24:
		info.Encoding = EncodingRGB24
	case hdr.PixelDepth == 32:
		info.Encoding = EncodingRGBA32
	default:
		return nil, fmt.Errorf("%w: pixel depth %d", ErrUnknownContainer, hdr.PixelDepth)
	}
	info.Format = info.Encoding.String()

	return info, nil
}
