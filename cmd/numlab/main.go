// SPDX-License-Identifier: MIT

// Command numlab runs the numlab numeric routines from the shell.
package main

import (
	"os"

	"github.com/katalvlaran/numlab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
