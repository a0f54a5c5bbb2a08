package main

import (
	"io"

	"github.com/spf13/pflag"
)

type config struct {
	str      string
	hasStr   bool
	line     bool
	quiet    bool
	logLevel string
	files    []string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.str, "string", "s", "", "hash the given string instead of reading input")
	fs.BoolVarP(&cfg.line, "line", "l", false, "read a single line from standard input and hash it")
	fs.BoolVarP(&cfg.quiet, "quiet", "q", false, "print only the digest")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.hasStr = fs.Changed("string")
	cfg.files = fs.Args()
	return cfg, nil
}
