// Package cmd - resolve command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dimgrid/core/catalog"
	"dimgrid/core/enumeration"
	"dimgrid/internal/config"
	"dimgrid/internal/errors"
)

// resolveCmd resolves a mapping between two catalog enumerations
var resolveCmd = &cobra.Command{
	Use:   "resolve FROM_ENUM TO_ENUM",
	Short: "Resolve the mapping between two catalog enumerations",
	Long: `Resolve which mapping applies for re-expressing a dataset recorded
against FROM_ENUM in terms of TO_ENUM. "none" is a normal outcome meaning no
mapping is available.

Examples:
  dimgrid resolve counties states
  dimgrid resolve states conus`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

// singleAxisDataset tags every axis with the same enumeration; the registry
// only reads the axis matching the target's kind
type singleAxisDataset struct {
	enum enumeration.View
}

func (d singleAxisDataset) SectorEnum() enumeration.View    { return d.enum }
func (d singleAxisDataset) GeographyEnum() enumeration.View { return d.enum }
func (d singleAxisDataset) EndUseEnum() enumeration.View    { return d.enum }
func (d singleAxisDataset) TimeEnum() enumeration.View      { return d.enum }

func runResolve(cmd *cobra.Command, args []string) error {
	reg, store, err := catalog.Build(config.Get().Catalog)
	if err != nil {
		return err
	}

	from, ok := store.Get(args[0])
	if !ok {
		return errors.NotFound("enumeration", args[0])
	}
	to, ok := store.Get(args[1])
	if !ok {
		return errors.NotFound("enumeration", args[1])
	}

	m, found, err := reg.Get(singleAxisDataset{enum: from}, to)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("%s -> %s: none\n", from.Name(), to.Name())
		return nil
	}
	fmt.Printf("%s -> %s: %T (via %s)\n", from.Name(), to.Name(), m, m.From().Name())
	return nil
}
