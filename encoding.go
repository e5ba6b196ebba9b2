package texdump

import (
	"strconv"
	"strings"
)

// PixelEncoding is the source pixel encoding of a texture. Values match the
// ordinals stored by the upstream asset serializer.
type PixelEncoding uint32

// Known pixel encodings.
const (
	EncodingUnknown    PixelEncoding = 0
	EncodingAlpha8     PixelEncoding = 1
	EncodingARGB4444   PixelEncoding = 2
	EncodingRGB24      PixelEncoding = 3
	EncodingRGBA32     PixelEncoding = 4
	EncodingARGB32     PixelEncoding = 5
	EncodingRGB565     PixelEncoding = 7
	EncodingDXT1       PixelEncoding = 10
	EncodingDXT5       PixelEncoding = 12
	EncodingRGBA4444   PixelEncoding = 13
	EncodingPVRTCRGB2  PixelEncoding = 30
	EncodingPVRTCRGBA2 PixelEncoding = 31
	EncodingPVRTCRGB4  PixelEncoding = 32
	EncodingPVRTCRGBA4 PixelEncoding = 33
	EncodingETCRGB4    PixelEncoding = 34
	EncodingATCRGB4    PixelEncoding = 35
	EncodingATCRGBA8   PixelEncoding = 36
	EncodingBGRA32     PixelEncoding = 37
	EncodingATFRGBDXT1 PixelEncoding = 38
	EncodingATFRGBAJPG PixelEncoding = 39
	EncodingATFRGBJPG  PixelEncoding = 40
)

var encodingNames = map[PixelEncoding]string{
	EncodingAlpha8:     "Alpha8",
	EncodingARGB4444:   "ARGB4444",
	EncodingRGB24:      "RGB24",
	EncodingRGBA32:     "RGBA32",
	EncodingARGB32:     "ARGB32",
	EncodingRGB565:     "RGB565",
	EncodingDXT1:       "DXT1",
	EncodingDXT5:       "DXT5",
	EncodingRGBA4444:   "RGBA4444",
	EncodingPVRTCRGB2:  "PVRTC_RGB2",
	EncodingPVRTCRGBA2: "PVRTC_RGBA2",
	EncodingPVRTCRGB4:  "PVRTC_RGB4",
	EncodingPVRTCRGBA4: "PVRTC_RGBA4",
	EncodingETCRGB4:    "ETC_RGB4",
	EncodingATCRGB4:    "ATC_RGB4",
	EncodingATCRGBA8:   "ATC_RGBA8",
	EncodingBGRA32:     "BGRA32",
	EncodingATFRGBDXT1: "ATF_RGB_DXT1",
	EncodingATFRGBAJPG: "ATF_RGBA_JPG",
	EncodingATFRGBJPG:  "ATF_RGB_JPG",
}

// Known reports whether e is one of the recognized encodings.
func (e PixelEncoding) Known() bool {
	_, ok := encodingNames[e]
	return ok
}

// String returns the encoding name, or the ordinal for unknown values.
func (e PixelEncoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}

	return "PixelEncoding(" + strconv.FormatUint(uint64(e), 10) + ")"
}

// ParsePixelEncoding accepts an encoding name (case-insensitive) or a decimal
// ordinal. Ordinals are returned as-is even when they are not known, so that
// the encoder can report them as skips.
func ParsePixelEncoding(s string) (PixelEncoding, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return PixelEncoding(n), nil
	}

	for e, name := range encodingNames {
		if strings.EqualFold(name, s) {
			return e, nil
		}
	}

	return EncodingUnknown, ErrUnknownEncodingName
}
