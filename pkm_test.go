package texdump

import (
	"bytes"
	"errors"
	"testing"
)

func TestPKMRoundUp(t *testing.T) {
	t.Parallel()

	for dim, want := range map[uint32]uint32{1: 4, 4: 4, 5: 8, 7: 8, 8: 8, 9: 12, 255: 256} {
		if got := pkmRoundUp(dim); got != want {
			t.Errorf("pkmRoundUp(%d) = %d, want %d", dim, got, want)
		}
	}
}

func TestEncodePKMLayout(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{0xee}, 32)
	res, err := EncodeAs(&Texture{Name: "sand", Width: 5, Height: 7, Encoding: EncodingETCRGB4, Data: payload}, ContainerPKM)
	if err != nil {
		t.Fatalf("EncodeAs: %v", err)
	}
	if len(res.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(res.Outputs))
	}

	out := res.Outputs[0]
	if out.FileName() != "sand.pkm" {
		t.Fatalf("FileName() = %q", out.FileName())
	}
	want := []byte{'P', 'K', 'M', ' ', '1', '0', 0, 0, 0, 8, 0, 8, 0, 5, 0, 7}
	if !bytes.Equal(out.Data[:16], want) {
		t.Fatalf("header = % x, want % x", out.Data[:16], want)
	}
	if !bytes.Equal(out.Data[16:], payload) {
		t.Fatalf("payload not copied verbatim")
	}
}

func TestPKMHeaderErrors(t *testing.T) {
	t.Parallel()

	if _, err := makePKMHeader(4, 4, EncodingDXT5); !errors.Is(err, ErrWrongContainer) {
		t.Fatalf("expected ErrWrongContainer, got %v", err)
	}
	if _, err := makePKMHeader(65535, 4, EncodingETCRGB4); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow, got %v", err)
	}
}

func TestPKMNeverSelected(t *testing.T) {
	t.Parallel()

	res, err := Encode(&Texture{Name: "etc", Width: 4, Height: 4, Encoding: EncodingETCRGB4, Data: make([]byte, 8)})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if res.Outputs[0].Container != ContainerKTX {
		t.Fatalf("ETC_RGB4 encoded as %s, want KTX", res.Outputs[0].Container)
	}
}
