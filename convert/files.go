package convert

import (
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cocosip/go-qoi/qoi"
)

// Format identifies a file-level image container convert can bridge to and
// from the QOI pixel buffer model.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

// FormatFromExt maps a file extension (with or without the leading dot) to
// the Format it names. ok is false for anything convert doesn't bridge.
func FormatFromExt(ext string) (f Format, ok bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return FormatPNG, true
	case "bmp":
		return FormatBMP, true
	case "tif", "tiff":
		return FormatTIFF, true
	default:
		return 0, false
	}
}

// GuessFormat derives a Format from a file path's extension.
func GuessFormat(path string) (Format, bool) {
	return FormatFromExt(filepath.Ext(path))
}

// DecodeImage reads a PNG, BMP, or TIFF stream and flattens it into a QOI
// header and pixel buffer via FromImage.
func DecodeImage(r io.Reader, f Format) (qoi.Header, []byte, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	default:
		return qoi.Header{}, nil, errors.Errorf("convert: unknown source format %d", f)
	}
	if err != nil {
		return qoi.Header{}, nil, errors.Wrap(err, "decode source image")
	}

	h, pixels := FromImage(img)
	return h, pixels, nil
}

// EncodeImage renders a QOI header and pixel buffer as a PNG, BMP, or TIFF
// stream. QOI's pixel model bridges through image.Image for this, since
// none of the three target formats can be written straight from a raw
// byte buffer.
func EncodeImage(w io.Writer, f Format, h qoi.Header, pixels []byte) error {
	img := ToImage(h, pixels)

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return errors.Errorf("convert: unknown destination format %d", f)
	}
	if err != nil {
		return errors.Wrap(err, "encode destination image")
	}
	return nil
}
