package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zeebo/sha256"
	"github.com/zeebo/sha256/internal/logging"
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		return 1
	}

	level, err := logging.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "sha256sum: %v\n", err)
		return 1
	}
	logger := logging.New(stderr, level)

	switch {
	case cfg.hasStr:
		printText(stdout, cfg, sha256.Hex([]byte(cfg.str)))
		return 0

	case cfg.line:
		line, err := readLine(stdin)
		if err != nil {
			logger.Error("reading line", "err", err)
			return 1
		}
		logger.Debug("hashing line", "bytes", len(line))
		printText(stdout, cfg, sha256.Hex([]byte(line)))
		return 0

	case len(cfg.files) == 0:
		cfg.files = []string{"-"}
	}

	status := 0
	for _, name := range cfg.files {
		digest, n, err := hashNamed(name, stdin)
		if err != nil {
			logger.Error("hashing failed", "path", name, "err", err)
			status = 1
			continue
		}
		logger.Debug("hashed", "path", name, "bytes", n)
		printFile(stdout, cfg, digest, name)
	}
	return status
}

func printText(w io.Writer, cfg config, digest string) {
	if cfg.quiet {
		fmt.Fprintln(w, digest)
		return
	}
	fmt.Fprintf(w, "SHA-256 HASH: %s\n", digest)
}

func printFile(w io.Writer, cfg config, digest, name string) {
	if cfg.quiet {
		fmt.Fprintln(w, digest)
		return
	}
	fmt.Fprintf(w, "%s  %s\n", digest, name)
}

// readLine returns the first line of r without its line ending. Input that
// ends without a newline is still a line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// hashNamed hashes the named file, or stdin when name is "-".
func hashNamed(name string, stdin io.Reader) (string, int64, error) {
	if name == "-" {
		return hashReader(stdin)
	}

	fh, err := os.Open(name)
	if err != nil {
		return "", 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer fh.Close()

	return hashReader(fh)
}

func hashReader(r io.Reader) (string, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, fmt.Errorf("read: %w", err)
	}
	return h.SumHex(), n, nil
}
