package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cocosip/go-qoi/convert"
	"github.com/cocosip/go-qoi/qoi"
)

// runDecode reads a QOI stream and writes it out as a PNG, BMP, or TIFF
// image, inferred from -format or the -out extension.
func runDecode(cfg config, logger *zap.Logger) error {
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	h, pixels, err := qoi.Decode(data, cfg.channels)
	if err != nil {
		return errors.Wrap(err, "qoi decode")
	}
	if cfg.channels != 0 {
		// The buffer is laid out with the requested channel count, while the
		// returned header keeps the stream's; make them agree for ToImage.
		h.Channels = uint8(cfg.channels)
	}
	logger.Debug("decoded qoi stream",
		zap.Uint32("width", h.Width), zap.Uint32("height", h.Height), zap.Uint8("channels", h.Channels))

	format, err := destinationFormat(cfg)
	if err != nil {
		return err
	}

	dst, err := os.Create(cfg.output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer dst.Close()

	if err := convert.EncodeImage(dst, format, h, pixels); err != nil {
		return errors.Wrap(err, "encode destination image")
	}
	logger.Info("wrote image file", zap.String("path", cfg.output))
	return nil
}

func destinationFormat(cfg config) (convert.Format, error) {
	if cfg.format != "" {
		f, ok := convert.FormatFromExt(cfg.format)
		if !ok {
			return 0, errors.Errorf("unknown -format %q", cfg.format)
		}
		return f, nil
	}
	f, ok := convert.GuessFormat(cfg.output)
	if !ok {
		return 0, errors.Errorf("cannot infer destination format from %q, pass -format", cfg.output)
	}
	return f, nil
}
