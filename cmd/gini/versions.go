package main

import (
	"errors"

	"github.com/sartorproj/goineq/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the module versions built into this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mods := buildinfo.Modules()
			if mods == nil {
				return errors.New("no build information available")
			}
			return buildinfo.Format(cmd.OutOrStdout(), mods)
		},
	}
}
