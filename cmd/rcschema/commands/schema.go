package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/takumiyoshikawa/rcschema/internal/schema"
)

const defaultSchemaID = "https://raw.githubusercontent.com/takumiyoshikawa/rcschema/main/run-configurations.schema.json"

func NewSchemaCmd(opts *rootOptions) *cobra.Command {
	var outputFile string
	var registryFile string
	var noBuiltin bool
	var header schema.Header

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate JSON Schema for run configuration files",
		Long: `Generate a JSON Schema that can be used for IDE autocomplete and validation
of run configuration files.

Configuration types come from the built-in set and from an optional registry
manifest (--registry). Types that cannot be described are reported on stderr
and left out or described loosely; generation itself does not fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(registryFile, noBuiltin)
			if err != nil {
				return err
			}

			a := schema.NewAssembler(opts.logger)
			schemaBytes := a.Generate(reg.Types(), header)

			report := a.Report()
			opts.logger.Info().
				Int("types", report.Types).
				Int("skipped", report.SkippedTypes).
				Int("definitions", report.Definitions).
				Int("warnings", report.Warnings).
				Int("errors", report.Errors).
				Msg("schema generated")

			return writeSchema(cmd, outputFile, schemaBytes)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&registryFile, "registry", "r", "", "Registry manifest with additional configuration types")
	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "Do not include the built-in configuration types")
	cmd.Flags().StringVar(&header.ID, "id", defaultSchemaID, "Value of the schema $id")
	cmd.Flags().StringVar(&header.Title, "title", "Run configurations", "Value of the schema title")

	return cmd
}

// writeSchema writes schemaBytes to outputFile, or to stdout when it is empty.
func writeSchema(cmd *cobra.Command, outputFile string, schemaBytes []byte) error {
	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(schemaBytes))
		return nil
	}

	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputFile, schemaBytes, 0o600); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "JSON Schema written to %s\n", outputFile)
	return nil
}
