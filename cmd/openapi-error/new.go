package main

import (
	"fmt"
	"strings"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newNewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name> [key=value...]",
		Short: "Print the JSON form of an error instance",
		Long: `Print the JSON form of an error instance.

Values are parsed as YAML scalars, so userId=42 sets an integer and
message="not found" sets a string.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.loadCatalog(cmd)
			if err != nil {
				return err
			}

			def, ok := c.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown error type %s", args[0])
			}

			overrides, err := parseOverrides(args[1:])
			if err != nil {
				return err
			}

			flags.logger(cmd).Debug("creating instance", "error", def.Name(), "overrides", len(overrides))
			e := def.WithOptions(openapierror.NoTrace()).New(overrides).(openapierror.Error)
			return writeJSON(cmd.OutOrStdout(), e.ToJSON())
		},
	}
}

func parseOverrides(args []string) (openapierror.Values, error) {
	overrides := make(openapierror.Values, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: want key=value", arg)
		}

		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		overrides[key] = v
	}
	return overrides, nil
}
