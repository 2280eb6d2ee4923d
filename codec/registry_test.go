package codec_test

import (
	"testing"

	"github.com/cocosip/go-qoi/codec"
	_ "github.com/cocosip/go-qoi/qoi"
)

func TestQOIRegistersUnderNameAndID(t *testing.T) {
	tests := []struct {
		name    string
		lookup  string
		wantID  string
		wantErr bool
	}{
		{"by name", "qoi", "image/qoi", false},
		{"by id", "image/qoi", "image/qoi", false},
		{"unknown codec", "png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.lookup)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Get(%q) = %v, want error", tt.lookup, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", tt.lookup, err)
			}
			if c.ID() != tt.wantID {
				t.Errorf("ID() = %q, want %q", c.ID(), tt.wantID)
			}
		})
	}
}

func TestQOIListedExactlyOnce(t *testing.T) {
	found := 0
	for _, c := range codec.List() {
		if c.ID() == "image/qoi" {
			found++
		}
	}
	if found != 1 {
		t.Errorf("qoi codec appears %d times in List(), want 1 (name and ID both map to the same instance)", found)
	}
}

func TestQOIRoundTripThroughRegistry(t *testing.T) {
	c, err := codec.Get("qoi")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	params := codec.EncodeParams{
		PixelData:  []byte{10, 20, 30, 255, 40, 50, 60, 255},
		Width:      2,
		Height:     1,
		Components: 4,
		BitDepth:   8,
	}

	data, err := c.Encode(params)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	result, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Width != params.Width || result.Height != params.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", result.Width, result.Height, params.Width, params.Height)
	}
	if string(result.PixelData) != string(params.PixelData) {
		t.Errorf("PixelData = % x, want % x", result.PixelData, params.PixelData)
	}
}
