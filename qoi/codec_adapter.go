package qoi

import (
	"fmt"

	"github.com/cocosip/go-qoi/codec"
)

// adapter implements codec.Codec over the package-level Encode/Decode
// functions, so QOI can be looked up alongside any other raster codec
// registered with the shared codec.Registry.
type adapter struct{}

var _ codec.Codec = adapter{}

func (adapter) ID() string { return "image/qoi" }

func (adapter) Name() string { return "qoi" }

func (adapter) Encode(params codec.EncodeParams) ([]byte, error) {
	if params.BitDepth != 0 && params.BitDepth != 8 {
		return nil, fmt.Errorf("qoi: unsupported bit depth %d: %w", params.BitDepth, ErrInvalidChannels)
	}
	h := Header{
		Width:    uint32(params.Width),
		Height:   uint32(params.Height),
		Channels: uint8(params.Components),
	}
	return Encode(h, params.PixelData)
}

func (adapter) Decode(data []byte) (*codec.DecodeResult, error) {
	h, pixels, err := Decode(data, 0)
	if err != nil {
		return nil, err
	}
	return &codec.DecodeResult{
		PixelData:  pixels,
		Width:      int(h.Width),
		Height:     int(h.Height),
		Components: int(h.Channels),
		BitDepth:   8,
	}, nil
}

func init() {
	codec.Register(adapter{})
}
