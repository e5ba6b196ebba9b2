package texdump

import (
	"math"
	"math/bits"
)

// MipLevel describes one level of a mip chain.
type MipLevel struct {
	Index  int
	Width  uint32
	Height uint32
	Size   int
}

// MipMapCount returns the number of levels in a full mip chain. The larger
// dimension governs: it is halved until it reaches 1, and the 1 is counted.
func MipMapCount(width, height uint32) int {
	count := 1
	for dim := max(width, height); dim > 1; dim /= 2 {
		count++
	}

	return count
}

// PlanMipmaps returns the level geometry for a texture. With mipmap disabled
// the plan holds only the full resolution level. Size is computed from
// bitsPerPixel and is zero when bitsPerPixel is zero. A size that does not
// fit in an int is reported as math.MaxInt.
func PlanMipmaps(width, height uint32, mipmap bool, bitsPerPixel uint32) []MipLevel {
	count := 1
	if mipmap {
		count = MipMapCount(width, height)
	}

	levels := make([]MipLevel, count)
	w, h := width, height
	for i := range levels {
		levels[i] = MipLevel{
			Index:  i,
			Width:  w,
			Height: h,
			Size:   levelSize(w, h, bitsPerPixel),
		}
		w = mipDimension(w)
		h = mipDimension(h)
	}

	return levels
}

// levelSize returns width*height*bitsPerPixel/8, saturated at math.MaxInt.
func levelSize(width, height, bitsPerPixel uint32) int {
	hi, lo := bits.Mul64(uint64(width)*uint64(height), uint64(bitsPerPixel))
	if hi != 0 {
		return math.MaxInt
	}
	size := lo / 8
	if size > math.MaxInt {
		return math.MaxInt
	}

	return int(size)
}

// mipDimension halves a dimension for the next level.
func mipDimension(base uint32) uint32 {
	result := base / 2
	if result < 1 {
		return 1
	}

	return result
}
