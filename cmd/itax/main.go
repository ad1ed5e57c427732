// Command itax computes income tax under the old and new regimes, compares
// them, and serves the same engine over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
