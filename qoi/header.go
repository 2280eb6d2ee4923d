package qoi

import "encoding/binary"

const (
	headerSize = 14
	maxPixels  = 400_000_000
)

var magic = [4]byte{'q', 'o', 'i', 'f'}

var padding = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Header is the 14-byte QOI frame header: magic, dimensions, channel count,
// and colorspace tag. Colorspace is informational only and never changes
// how pixels are encoded or decoded.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8 // 3 (RGB) or 4 (RGBA)
	Colorspace uint8 // 0 = sRGB with linear alpha, 1 = all linear
}

// validate checks the structural constraints shared by encode and decode:
// non-zero dimensions, a supported channel count and colorspace, and the
// 400,000,000-pixel ceiling.
func (h Header) validate() error {
	if h.Width == 0 || h.Height == 0 {
		return ErrInvalidDimensions
	}
	if h.Channels != 3 && h.Channels != 4 {
		return ErrInvalidChannels
	}
	if h.Colorspace != 0 && h.Colorspace != 1 {
		return ErrInvalidColorspace
	}
	if uint64(h.Height) >= uint64(maxPixels)/uint64(h.Width) {
		return ErrImageTooLarge
	}
	return nil
}

// pixelCount returns width*height. Callers must validate the header first;
// validate() guarantees this product fits comfortably in an int on any
// platform QOI targets (it is bounded by maxPixels).
func (h Header) pixelCount() int {
	return int(h.Width) * int(h.Height)
}

func appendHeader(buf []byte, h Header) []byte {
	buf = append(buf, magic[:]...)
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], h.Width)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], h.Height)
	buf = append(buf, tmp[:]...)
	buf = append(buf, h.Channels, h.Colorspace)
	return buf
}

func readHeader(data []byte) (Header, error) {
	if len(data) < headerSize+len(padding) {
		return Header{}, ErrTruncatedStream
	}
	if [4]byte(data[0:4]) != magic {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Width:      binary.BigEndian.Uint32(data[4:8]),
		Height:     binary.BigEndian.Uint32(data[8:12]),
		Channels:   data[12],
		Colorspace: data[13],
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}
