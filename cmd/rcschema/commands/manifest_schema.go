package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takumiyoshikawa/rcschema/internal/jsonschema"
)

func NewManifestSchemaCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "manifest-schema",
		Short: "Generate JSON Schema for registry manifest files",
		Long: `Generate a JSON Schema that can be used for IDE autocomplete and validation
of registry manifest files passed to --registry.

The generated schema can be used with yaml-language-server by adding a comment
at the top of your registry.yml file:

  # yaml-language-server: $schema=https://raw.githubusercontent.com/takumiyoshikawa/rcschema/main/registry.schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaBytes, err := jsonschema.ManifestSchema()
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}

			return writeSchema(cmd, outputFile, schemaBytes)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
