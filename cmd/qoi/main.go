// Command qoi encodes and decodes QOI images, and converts between the
// file formats convert bridges (PNG, BMP, TIFF).
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var cfg config
	fs := flag.NewFlagSet(sub, flag.ExitOnError)
	cfg.registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "qoi:", err)
		fs.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(cfg.logPath, cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qoi: could not set up logging:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	var runErr error
	switch sub {
	case "encode":
		runErr = runEncode(cfg, logger)
	case "decode":
		runErr = runDecode(cfg, logger)
	case "convert":
		runErr = runConvert(cfg, logger)
	default:
		usage()
		os.Exit(2)
	}
	if runErr != nil {
		logger.Error("command failed", zap.String("subcommand", sub), zap.Error(runErr))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: qoi <encode|decode|convert> -in PATH -out PATH [-format png|bmp|tiff] [-channels 0|3|4] [-log PATH] [-v]")
}
