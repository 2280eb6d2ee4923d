package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cocosip/go-qoi/convert"
)

// runConvert transcodes directly between PNG, BMP, and TIFF, without ever
// materializing a QOI stream.
func runConvert(cfg config, logger *zap.Logger) error {
	src, err := os.Open(cfg.input)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer src.Close()

	srcFormat, ok := convert.GuessFormat(cfg.input)
	if !ok {
		return errors.Errorf("cannot infer source format from %q", cfg.input)
	}
	dstFormat, err := destinationFormat(cfg)
	if err != nil {
		return err
	}

	h, pixels, err := convert.DecodeImage(src, srcFormat)
	if err != nil {
		return errors.Wrap(err, "decode source image")
	}

	dst, err := os.Create(cfg.output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer dst.Close()

	if err := convert.EncodeImage(dst, dstFormat, h, pixels); err != nil {
		return errors.Wrap(err, "encode destination image")
	}
	logger.Info("converted image", zap.String("from", cfg.input), zap.String("to", cfg.output))
	return nil
}
