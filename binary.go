package texdump

import (
	"bytes"
	"encoding/binary"
)

// pack serializes a fixed-size header struct in the given byte order and
// appends the trailing byte slices.
func pack(order binary.ByteOrder, header any, tail ...[]byte) ([]byte, error) {
	size := max(binary.Size(header), 0)
	for _, t := range tail {
		size += len(t)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	if err := binary.Write(&buf, order, header); err != nil {
		return nil, err
	}
	for _, t := range tail {
		buf.Write(t)
	}

	return buf.Bytes(), nil
}
