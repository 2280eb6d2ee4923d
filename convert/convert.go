// Package convert bridges Go's image.Image model and the QOI pixel-buffer
// model. It is the external collaborator the qoi package never talks to
// directly: qoi.Encode and qoi.Decode only ever see raw (header, pixel
// buffer) pairs, and this package is where those pairs meet file formats.
package convert

import (
	"image"
	"image/color"

	"github.com/cocosip/go-qoi/qoi"
)

// FromImage flattens img into a row-major QOI pixel buffer and the header
// describing it. The channel count is chosen automatically: 3 (RGB) if
// every pixel in img is fully opaque, 4 (RGBA) otherwise.
func FromImage(img image.Image) (qoi.Header, []byte) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := make([]byte, 0, width*height*4)
	opaque := true
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a != 0xffff {
				opaque = false
			}
			rgba = append(rgba, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}

	h := qoi.Header{
		Width:    uint32(width),
		Height:   uint32(height),
		Channels: 4,
	}
	if opaque {
		return dropAlpha(h, rgba)
	}
	return h, rgba
}

// dropAlpha repacks a 4-channel buffer as 3-channel and marks the header
// Channels field accordingly. Every pixel must already be fully opaque.
func dropAlpha(h qoi.Header, rgba []byte) (qoi.Header, []byte) {
	total := int(h.Width) * int(h.Height)
	rgb := make([]byte, 0, total*3)
	for i := 0; i < total; i++ {
		off := i * 4
		rgb = append(rgb, rgba[off], rgba[off+1], rgba[off+2])
	}
	h.Channels = 3
	return h, rgb
}

// ToImage rebuilds an image.Image from a decoded QOI pixel buffer. The
// result is always an *image.NRGBA; 3-channel buffers are expanded with a
// constant alpha of 255 rather than the 255-alpha convention living only
// implicitly in the caller's head.
func ToImage(h qoi.Header, pixels []byte) image.Image {
	width := int(h.Width)
	height := int(h.Height)
	channels := int(h.Channels)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		off := i * channels
		px := color.NRGBA{R: pixels[off], G: pixels[off+1], B: pixels[off+2], A: 255}
		if channels == 4 {
			px.A = pixels[off+3]
		}
		x := i % width
		y := i / width
		img.SetNRGBA(x, y, px)
	}
	return img
}
