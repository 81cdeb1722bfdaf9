package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/QuisEgoSum/openapi-error/catalog"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	file    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "openapi-error",
		Short: "Inspect error types declared in a YAML catalog",
		Long: `openapi-error loads an error catalog and prints what the error types
look like on the wire: their HTTP status, their JSON schema and the JSON
form of their instances.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "errors.yaml", "error catalog path")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(
		newListCmd(flags),
		newSchemaCmd(flags),
		newNewCmd(flags),
	)
	return cmd
}

func (f *rootFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (f *rootFlags) loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	logger := f.logger(cmd)

	c, err := catalog.LoadFile(f.file)
	if err != nil {
		logger.Error("failed to load catalog", "file", f.file, "error", err)
		return nil, err
	}
	logger.Debug("loaded catalog", "file", f.file, "definitions", len(c.Definitions()))
	return c, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
