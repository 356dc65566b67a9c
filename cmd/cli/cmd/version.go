// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridable at build time
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dimgrid version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dimgrid " + Version)
	},
}
