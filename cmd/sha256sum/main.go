// Command sha256sum prints SHA-256 digests of files, strings or standard
// input.
//
//	sha256sum [flags] [file ...]
//
// With no files and neither --string nor --line, standard input is hashed.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
