// SPDX-License-Identifier: MIT

// Command lvsparse manipulates compressed-row sparse matrices stored in the
// lvsparse text format: inspection, arithmetic, conjugate-gradient solves and
// a named-matrix store.
package main

import (
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
