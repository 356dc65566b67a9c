// Package cmd - convert-unit command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimgrid/core/units"
)

// convertUnitCmd derives a unit conversion factor
var convertUnitCmd = &cobra.Command{
	Use:   "convert-unit FROM TO",
	Short: "Derive the conversion factor between two units",
	Long: `Derive the multiplier converting FROM values to TO values, chaining
through the built-in ratio table when no direct ratio is known.

Examples:
  dimgrid convert-unit kWh MWh
  dimgrid convert-unit GWh kWh`,
	Args: cobra.ExactArgs(2),
	RunE: runConvertUnit,
}

func runConvertUnit(cmd *cobra.Command, args []string) error {
	factor, err := units.DefaultRatios().Factor(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("1 %s = %g %s\n", args[0], factor, args[1])
	return nil
}
