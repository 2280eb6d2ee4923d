package qoi

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustEncode(t *testing.T, h Header, pixels []byte) []byte {
	t.Helper()
	data, err := Encode(h, pixels)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		h        Header
		pixels   []byte
		channels int
	}{
		{
			name:     "one red pixel rgba",
			h:        Header{Width: 1, Height: 1, Channels: 4},
			pixels:   []byte{255, 0, 0, 255},
			channels: 4,
		},
		{
			name:     "two identical pixels rgb",
			h:        Header{Width: 2, Height: 1, Channels: 3},
			pixels:   []byte{10, 20, 30, 10, 20, 30},
			channels: 3,
		},
		{
			name:     "gradient with alpha changing at every pixel",
			h:        Header{Width: 16, Height: 16, Channels: 4},
			pixels:   gradientPixels(16, 16, 4),
			channels: 4,
		},
		{
			name:     "index hits across a small repeating palette",
			h:        Header{Width: 8, Height: 8, Channels: 4},
			pixels:   palettePixels(8, 8),
			channels: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustEncode(t, tt.h, tt.pixels)

			if !bytes.Equal(data[:4], magic[:]) {
				t.Errorf("stream does not start with qoif magic: % x", data[:4])
			}
			if !bytes.Equal(data[len(data)-8:], padding[:]) {
				t.Errorf("stream does not end with padding: % x", data[len(data)-8:])
			}

			gotHeader, gotPixels, err := Decode(data, tt.channels)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if gotHeader != tt.h {
				t.Errorf("Decode header = %+v, want %+v", gotHeader, tt.h)
			}
			if diff := cmp.Diff(tt.pixels, gotPixels); diff != "" {
				t.Errorf("Decode pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeThreeChannelRequestDropsAlpha(t *testing.T) {
	h := Header{Width: 2, Height: 1, Channels: 4}
	pixels := []byte{1, 2, 3, 255, 4, 5, 6, 128}
	data := mustEncode(t, h, pixels)

	_, got, err := Decode(data, 3)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	if !bytes.Equal(got, want) {
		t.Errorf("Decode(channels=3) = % x, want % x", got, want)
	}
}

func TestDecodeRejections(t *testing.T) {
	valid := mustEncode(t, Header{Width: 2, Height: 1, Channels: 3}, []byte{1, 2, 3, 4, 5, 6})

	tests := []struct {
		name    string
		data    []byte
		reqCh   int
		wantErr error
	}{
		{"empty", nil, 0, ErrEmptyInput},
		{"too short", valid[:10], 0, ErrTruncatedStream},
		{"bad magic", append([]byte{'x', 'x', 'x', 'x'}, valid[4:]...), 0, ErrBadMagic},
		{"bad requested channels", valid, 5, ErrInvalidRequestedChannels},
		{"truncated before opcodes consumed", valid[:len(valid)-9], 0, ErrTruncatedStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.data, tt.reqCh)
			if err != tt.wantErr {
				t.Fatalf("Decode error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaddingIsNotConsumedAsOpcodes(t *testing.T) {
	// A single-pixel image: one RGBA opcode followed by the 8-byte padding.
	// Decoding must yield exactly that one pixel, with the trailing padding
	// left unread rather than decoded as further opcodes.
	h := Header{Width: 1, Height: 1, Channels: 4}
	data := mustEncode(t, h, []byte{1, 2, 3, 4})

	gotHeader, gotPixels, err := Decode(data, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if gotHeader.Width != 1 || gotHeader.Height != 1 {
		t.Fatalf("unexpected header: %+v", gotHeader)
	}
	if !bytes.Equal(gotPixels, []byte{1, 2, 3, 4}) {
		t.Fatalf("Decode pixels = % x, want 01 02 03 04", gotPixels)
	}
}

func gradientPixels(w, h, channels int) []byte {
	out := make([]byte, w*h*channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * channels
			out[off] = byte(x * 17)
			out[off+1] = byte(y * 23)
			out[off+2] = byte((x + y) * 5)
			if channels == 4 {
				out[off+3] = byte(255 - x*3)
			}
		}
	}
	return out
}

func palettePixels(w, h int) []byte {
	palette := [][4]byte{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{12, 200, 40, 255},
		{200, 12, 40, 128},
	}
	out := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		p := palette[i%len(palette)]
		copy(out[i*4:i*4+4], p[:])
	}
	return out
}
