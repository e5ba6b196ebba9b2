package texdump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/woozymasta/bcn"
)

func TestDDSLinearSizeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		encoding PixelEncoding
		w, h     uint32
		want     uint32
	}{
		{name: "dxt1-64", encoding: EncodingDXT1, w: 64, h: 64, want: 2048},
		{name: "dxt5-64", encoding: EncodingDXT5, w: 64, h: 64, want: 4096},
		{name: "rgba32-64", encoding: EncodingRGBA32, w: 64, h: 64, want: 16384},
		{name: "rgb24-4x2", encoding: EncodingRGB24, w: 4, h: 2, want: 24},
		{name: "rgb565-8", encoding: EncodingRGB565, w: 8, h: 8, want: 128},
		{name: "alpha8-3x3", encoding: EncodingAlpha8, w: 3, h: 3, want: 9},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := makeDDSHeader(tc.w, tc.h, tc.encoding, false)
			if err != nil {
				t.Fatalf("makeDDSHeader: %v", err)
			}
			if hdr.PitchOrLinearSize != tc.want {
				t.Fatalf("PitchOrLinearSize = %d, want %d", hdr.PitchOrLinearSize, tc.want)
			}
		})
	}
}

func TestDDSHeaderMipmaps(t *testing.T) {
	t.Parallel()

	plain, err := makeDDSHeader(256, 256, EncodingDXT5, false)
	if err != nil {
		t.Fatalf("makeDDSHeader: %v", err)
	}
	if plain.MipMapCount != 0 || plain.Flags&bcn.DDSFlagMipmapCount != 0 || plain.Caps&bcn.DDSCapsMipmap != 0 {
		t.Fatalf("unexpected mipmap fields without mipmaps: %+v", plain)
	}

	mipped, err := makeDDSHeader(256, 256, EncodingDXT5, true)
	if err != nil {
		t.Fatalf("makeDDSHeader: %v", err)
	}
	if mipped.MipMapCount != 9 {
		t.Fatalf("MipMapCount = %d, want 9", mipped.MipMapCount)
	}
	if mipped.Flags&bcn.DDSFlagMipmapCount == 0 {
		t.Fatalf("mipmap count flag not set")
	}
	if mipped.Caps&(bcn.DDSCapsComplex|bcn.DDSCapsMipmap) != bcn.DDSCapsComplex|bcn.DDSCapsMipmap {
		t.Fatalf("mipmap caps not set: 0x%x", mipped.Caps)
	}
}

func TestDDSWrongContainer(t *testing.T) {
	t.Parallel()

	_, err := makeDDSHeader(4, 4, EncodingETCRGB4, false)
	if !errors.Is(err, ErrWrongContainer) {
		t.Fatalf("expected ErrWrongContainer, got %v", err)
	}
}

func TestEncodeDDSLayout(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{0x5a}, 64*64/2)
	res, err := Encode(&Texture{Name: "rock", Width: 64, Height: 64, Encoding: EncodingDXT1, Data: payload})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(res.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(res.Outputs))
	}

	out := res.Outputs[0]
	if out.FileName() != "rock.dds" {
		t.Fatalf("FileName() = %q", out.FileName())
	}
	if len(out.Data) != 128+len(payload) {
		t.Fatalf("output size = %d, want %d", len(out.Data), 128+len(payload))
	}
	if string(out.Data[:4]) != "DDS " {
		t.Fatalf("bad magic %q", out.Data[:4])
	}
	if got := binary.LittleEndian.Uint32(out.Data[4:8]); got != 124 {
		t.Fatalf("header size = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out.Data[20:24]); got != 2048 {
		t.Fatalf("linear size = %d", got)
	}
	if got := string(out.Data[84:88]); got != "DXT1" {
		t.Fatalf("fourCC = %q", got)
	}
	if !bytes.Equal(out.Data[128:], payload) {
		t.Fatalf("payload not copied verbatim")
	}

	hdr, err := bcn.ReadDDSHeader(bytes.NewReader(out.Data))
	if err != nil {
		t.Fatalf("ReadDDSHeader: %v", err)
	}
	if hdr.Width != 64 || hdr.Height != 64 {
		t.Fatalf("unexpected size: %dx%d", hdr.Width, hdr.Height)
	}
	if e, _ := detectDDSFormat(hdr.PixelFormat); e != EncodingDXT1 {
		t.Fatalf("detectDDSFormat = %s", e)
	}
}

func TestDetectDDSFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for e := range ddsFormats {
		hdr, err := makeDDSHeader(16, 16, e, false)
		if err != nil {
			t.Fatalf("makeDDSHeader(%s): %v", e, err)
		}
		if got, _ := detectDDSFormat(hdr.PixelFormat); got != e {
			t.Errorf("detectDDSFormat(%s) = %s", e, got)
		}
	}
}
