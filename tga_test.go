package texdump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestEncodeTGAMipChain(t *testing.T) {
	t.Parallel()

	payload := sequence(48 + 12 + 3)
	res, err := Encode(&Texture{Name: "leaf", Width: 4, Height: 4, Encoding: EncodingRGB24, MipMap: true, Data: payload})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(res.Outputs) != MipMapCount(4, 4) {
		t.Fatalf("expected %d outputs, got %d", MipMapCount(4, 4), len(res.Outputs))
	}

	wantNames := []string{"leaf_mip_0.tga", "leaf_mip_1.tga", "leaf_mip_2.tga"}
	wantDims := []uint16{4, 2, 1}
	offset := 0
	for i, out := range res.Outputs {
		if out.FileName() != wantNames[i] {
			t.Fatalf("output %d name = %q, want %q", i, out.FileName(), wantNames[i])
		}
		if out.Level != i {
			t.Fatalf("output %d level = %d", i, out.Level)
		}

		w := binary.LittleEndian.Uint16(out.Data[12:14])
		h := binary.LittleEndian.Uint16(out.Data[14:16])
		if w != wantDims[i] || h != wantDims[i] {
			t.Fatalf("output %d dims = %dx%d", i, w, h)
		}
		if out.Data[2] != tgaTypeTrueColor || out.Data[16] != 24 || out.Data[17] != 0 {
			t.Fatalf("output %d header = % x", i, out.Data[:18])
		}

		size := int(w) * int(h) * 3
		if !bytes.Equal(out.Data[18:], payload[offset:offset+size]) {
			t.Fatalf("output %d payload mismatch", i)
		}
		offset += size
	}
	if offset != len(payload) {
		t.Fatalf("payload not exhausted: %d of %d", offset, len(payload))
	}
}

func TestEncodeTGASingleLevel(t *testing.T) {
	t.Parallel()

	payload := sequence(2 * 2 * 4)
	res, err := Encode(&Texture{Name: "icon", Width: 2, Height: 2, Encoding: EncodingARGB32, Data: payload})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(res.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(res.Outputs))
	}

	out := res.Outputs[0]
	if out.FileName() != "icon.tga" {
		t.Fatalf("FileName() = %q", out.FileName())
	}
	if len(out.Data) != 18+len(payload) {
		t.Fatalf("output size = %d", len(out.Data))
	}
	if out.Data[16] != 32 || out.Data[17] != 8 {
		t.Fatalf("depth/descriptor = %d/%d", out.Data[16], out.Data[17])
	}
	want := []byte{1, 2, 3, 0, 5, 6, 7, 4, 9, 10, 11, 8, 13, 14, 15, 12}
	if !bytes.Equal(out.Data[18:], want) {
		t.Fatalf("converted pixels = % x, want % x", out.Data[18:], want)
	}
	if !bytes.Equal(payload, sequence(16)) {
		t.Fatalf("caller payload modified")
	}
}

func TestEncodeTGAAlpha8(t *testing.T) {
	t.Parallel()

	res, err := Encode(&Texture{Name: "mask", Width: 3, Height: 1, Encoding: EncodingAlpha8, Data: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	hdr := res.Outputs[0].Data[:18]
	if hdr[2] != tgaTypeGrayscale || hdr[16] != 8 || hdr[17] != 0 {
		t.Fatalf("header = % x", hdr)
	}
}

func TestEncodeTGAPayloadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tex     Texture
		wantErr error
	}{
		{
			name:    "remainder",
			tex:     Texture{Name: "a", Width: 2, Height: 2, Encoding: EncodingRGB24, Data: sequence(13)},
			wantErr: ErrPayloadRemainder,
		},
		{
			name:    "too-short-mip-chain",
			tex:     Texture{Name: "b", Width: 4, Height: 4, Encoding: EncodingRGB24, MipMap: true, Data: sequence(60)},
			wantErr: ErrPayloadTooShort,
		},
		{
			name:    "stride",
			tex:     Texture{Name: "c", Width: 1, Height: 1, Encoding: EncodingBGRA32, Data: sequence(6)},
			wantErr: ErrPixelStride,
		},
		{
			name:    "width-overflow",
			tex:     Texture{Name: "d", Width: 70000, Height: 1, Encoding: EncodingAlpha8, Data: sequence(70000)},
			wantErr: ErrSizeOverflow,
		},
		{
			name:    "huge-mip-chain",
			tex:     Texture{Name: "e", Width: 1 << 31, Height: 2, Encoding: EncodingAlpha8, MipMap: true, Data: sequence(16)},
			wantErr: ErrSizeOverflow,
		},
		{
			name:    "max-dimensions",
			tex:     Texture{Name: "f", Width: math.MaxUint32, Height: math.MaxUint32, Encoding: EncodingRGBA32, MipMap: true, Data: sequence(16)},
			wantErr: ErrSizeOverflow,
		},
		{
			name:    "height-overflow",
			tex:     Texture{Name: "g", Width: 1, Height: 1 << 16, Encoding: EncodingRGB24, Data: sequence(3)},
			wantErr: ErrSizeOverflow,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := Encode(&tc.tex)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if res != nil {
				t.Fatalf("expected no result on error, got %+v", res)
			}

			var cerr *ContractError
			if !errors.As(err, &cerr) || cerr.Name != tc.tex.Name {
				t.Fatalf("expected ContractError for %q, got %v", tc.tex.Name, err)
			}
		})
	}
}
