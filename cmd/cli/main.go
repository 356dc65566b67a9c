// Package main is the entry point for the dimgrid CLI.
package main

import (
	"os"

	"dimgrid/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
