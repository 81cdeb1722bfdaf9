package main

import (
	"fmt"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/spf13/cobra"
)

func newSchemaCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [name...]",
		Short: "Print the JSON schema of error types",
		Long: `Print the JSON schema of error types.

With a single name the schema is printed as is. Otherwise the schemas are
printed as an object keyed by name, for all error types when no name is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.loadCatalog(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				def, ok := c.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown error type %s", args[0])
				}
				return writeJSON(cmd.OutOrStdout(), def.Schema())
			}

			defs := c.Definitions()
			if len(args) > 0 {
				defs = defs[:0]
				for _, name := range args {
					def, ok := c.Lookup(name)
					if !ok {
						return fmt.Errorf("unknown error type %s", name)
					}
					defs = append(defs, def)
				}
			}

			out := make(map[string]openapierror.Schema, len(defs))
			for _, def := range defs {
				out[def.Name()] = def.Schema()
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
