package main

import (
	"fmt"
	"os"
)

// receiptor reads an image path from stdin, binarizes the image for OCR and
// prints the path of the processed PNG.
func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
