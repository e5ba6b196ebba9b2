package texdump

import "strings"

// Container is an output container family.
type Container int

// Container families.
const (
	ContainerNone Container = iota
	ContainerDDS
	ContainerKTX
	ContainerTGA
	ContainerPKM
)

var containerExtensions = [...]string{
	ContainerNone: "",
	ContainerDDS:  "dds",
	ContainerKTX:  "ktx",
	ContainerTGA:  "tga",
	ContainerPKM:  "pkm",
}

// Extension returns the file extension without the leading dot.
func (c Container) Extension() string {
	if c < 0 || int(c) >= len(containerExtensions) {
		return ""
	}

	return containerExtensions[c]
}

func (c Container) String() string {
	if ext := c.Extension(); ext != "" {
		return strings.ToUpper(ext)
	}

	return "none"
}

// ParseContainer maps a name or extension ("dds", ".KTX", ...) to a Container.
// "auto" and "" map to ContainerNone.
func ParseContainer(s string) (Container, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch s {
	case "", "auto", "none":
		return ContainerNone, nil
	}

	for c, ext := range containerExtensions {
		if ext != "" && ext == s {
			return Container(c), nil
		}
	}

	return ContainerNone, ErrUnknownContainer
}

// selected holds the automatic family for each encoding. PKM is reserved and
// is never picked here.
var selected = map[PixelEncoding]Container{
	EncodingAlpha8: ContainerTGA,
	EncodingRGB24:  ContainerTGA,
	EncodingRGBA32: ContainerTGA,
	EncodingBGRA32: ContainerTGA,
	EncodingARGB32: ContainerTGA,

	EncodingPVRTCRGB2:  ContainerKTX,
	EncodingPVRTCRGBA2: ContainerKTX,
	EncodingPVRTCRGB4:  ContainerKTX,
	EncodingPVRTCRGBA4: ContainerKTX,
	EncodingATCRGB4:    ContainerKTX,
	EncodingATCRGBA8:   ContainerKTX,
	EncodingETCRGB4:    ContainerKTX,

	EncodingARGB4444: ContainerDDS,
	EncodingRGB565:   ContainerDDS,
	EncodingDXT1:     ContainerDDS,
	EncodingDXT5:     ContainerDDS,
}

// SelectContainer returns the container family used for e, or ContainerNone
// when e has no supported container.
func SelectContainer(e PixelEncoding) Container {
	return selected[e]
}

// Supports reports whether the header builder of c can encode e. The set can
// be wider than what SelectContainer routes to c.
func (c Container) Supports(e PixelEncoding) bool {
	switch c {
	case ContainerDDS:
		_, ok := ddsFormats[e]
		return ok
	case ContainerKTX:
		_, ok := ktxFormats[e]
		return ok
	case ContainerTGA:
		_, ok := tgaFormats[e]
		return ok
	case ContainerPKM:
		_, ok := pkmFormats[e]
		return ok
	default:
		return false
	}
}
