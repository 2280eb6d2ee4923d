package main

import (
	"flag"
	"fmt"
)

// config holds the flags shared by every subcommand, plus logging knobs.
// validate checks it in place, the way jpeg/lossless.JPEGLosslessParameters
// validated its receiver in the teacher codebase.
type config struct {
	input    string
	output   string
	format   string // destination image format for "decode" and "convert"; "" lets the output extension decide
	channels int    // requested decode channel count: 0 (header default), 3, or 4
	logPath  string // optional log file; empty means stderr only
	verbose  bool
}

func (c *config) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.input, "in", "", "input file path")
	fs.StringVar(&c.output, "out", "", "output file path")
	fs.StringVar(&c.format, "format", "", "destination image format (png, bmp, tiff); inferred from -out when empty")
	fs.IntVar(&c.channels, "channels", 0, "requested output channel count (0, 3, or 4)")
	fs.StringVar(&c.logPath, "log", "", "log file path; logs to stderr when empty")
	fs.BoolVar(&c.verbose, "v", false, "enable debug-level logging")
}

func (c *config) validate() error {
	if c.input == "" {
		return fmt.Errorf("-in is required")
	}
	if c.output == "" {
		return fmt.Errorf("-out is required")
	}
	if c.channels != 0 && c.channels != 3 && c.channels != 4 {
		return fmt.Errorf("-channels must be 0, 3, or 4, got %d", c.channels)
	}
	return nil
}
