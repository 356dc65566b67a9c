// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimgrid/core/catalog"
	"dimgrid/internal/config"
)

// catalogCmd loads and validates the built-in catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load and validate the enumeration and mapping catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	reg, store, err := catalog.Build(config.Get().Catalog)
	if err != nil {
		return err
	}

	fmt.Printf("catalog ok: %d enumerations, %d mappings\n", store.Len(), reg.Len())
	for _, name := range store.Names() {
		e, _ := store.Get(name)
		fmt.Printf("  %-24s %-10s %d ids\n", name, e.Axis(), e.Len())
	}
	return nil
}
