// Package main provides the linepipe command line tool.
//
// linepipe reads lines from standard input until a line equal to the stop
// marker (STOP by default), replaces line breaks with spaces and "++"
// pairs with carets, and writes the result to standard output as
// fixed-width 80-character lines. A trailing remainder shorter than one
// output line is dropped.
//
// Usage:
//
//	linepipe [flags] < input > output
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
