package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cocosip/go-qoi/convert"
	"github.com/cocosip/go-qoi/qoi"
)

// runEncode reads a PNG, BMP, or TIFF source image and writes it out as a
// QOI stream.
func runEncode(cfg config, logger *zap.Logger) error {
	src, err := os.Open(cfg.input)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer src.Close()

	format, ok := convert.GuessFormat(cfg.input)
	if !ok {
		return errors.Errorf("cannot infer source format from %q, expected .png, .bmp, or .tif(f)", cfg.input)
	}

	h, pixels, err := convert.DecodeImage(src, format)
	if err != nil {
		return errors.Wrap(err, "decode source image")
	}
	logger.Debug("decoded source image",
		zap.Uint32("width", h.Width), zap.Uint32("height", h.Height), zap.Uint8("channels", h.Channels))

	data, err := qoi.Encode(h, pixels)
	if err != nil {
		return errors.Wrap(err, "qoi encode")
	}

	if err := os.WriteFile(cfg.output, data, 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}
	logger.Info("wrote qoi file", zap.String("path", cfg.output), zap.Int("bytes", len(data)))
	return nil
}
