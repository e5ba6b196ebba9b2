package texdump

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeOverflow indicates a size or dimension exceeds the container field width.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidDimensions indicates a zero width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrWrongContainer indicates a header builder got an encoding outside its family.
	ErrWrongContainer = errors.New("encoding not supported by container")
	// ErrPixelStride indicates a payload length that is not a multiple of the pixel size.
	ErrPixelStride = errors.New("payload length does not match pixel stride")
	// ErrPayloadTooShort indicates the payload ends before the last mip level.
	ErrPayloadTooShort = errors.New("payload shorter than mip chain")
	// ErrPayloadRemainder indicates bytes left over after slicing all mip levels.
	ErrPayloadRemainder = errors.New("payload not consumed by mip chain")
	// ErrUnknownEncodingName indicates an encoding name that cannot be parsed.
	ErrUnknownEncodingName = errors.New("unknown encoding name")
	// ErrUnknownContainer indicates an unrecognized container name or magic.
	ErrUnknownContainer = errors.New("unknown container")
	// ErrReadHeader indicates a container header read failed.
	ErrReadHeader = errors.New("reading header failed")
	// ErrOpenFile indicates a file open failed.
	ErrOpenFile = errors.New("open file failed")
)

// ContractError reports a broken invariant while converting one texture.
// Err is always one of the package sentinel errors, possibly wrapped.
type ContractError struct {
	Name     string
	Encoding PixelEncoding
	Err      error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("texture %q (%s): %v", e.Name, e.Encoding, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// SkipReason tells why a texture produced no output.
type SkipReason int

const (
	// SkipEmptyPayload marks a texture without pixel data.
	SkipEmptyPayload SkipReason = iota + 1
	// SkipUnknownEncoding marks an ordinal that is not a known encoding.
	SkipUnknownEncoding
	// SkipUnsupportedEncoding marks a known encoding with no container family.
	SkipUnsupportedEncoding
)

func (r SkipReason) String() string {
	switch r {
	case SkipEmptyPayload:
		return "empty payload"
	case SkipUnknownEncoding:
		return "unknown encoding"
	case SkipUnsupportedEncoding:
		return "unsupported encoding"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// Skip is a non-fatal warning: the texture was left out and conversion of
// other textures continues.
type Skip struct {
	Name     string
	Encoding PixelEncoding
	Reason   SkipReason
}

func (s Skip) String() string {
	if s.Reason == SkipEmptyPayload {
		return fmt.Sprintf("texture %q is empty", s.Name)
	}

	return fmt.Sprintf("texture %q has %s %s", s.Name, s.Reason, s.Encoding)
}
