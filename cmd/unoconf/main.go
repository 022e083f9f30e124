// Package main provides the unoconf CLI tool for assembling UnoCSS configuration.
package main

import (
	"fmt"
	"io"
	"os"
)

// stdout receives command output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
