package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List error types and their HTTP status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.loadCatalog(cmd)
			if err != nil {
				return err
			}
			for _, def := range c.Definitions() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", def.Name(), def.HTTPCode()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
