package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/takumiyoshikawa/rcschema/internal/propname"
	"github.com/takumiyoshikawa/rcschema/internal/registry"
	"github.com/takumiyoshikawa/rcschema/internal/schema"
)

func NewTypesCmd() *cobra.Command {
	var registryFile string
	var noBuiltin bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List configuration types and their schema property names",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(registryFile, noBuiltin)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPROPERTY\tFACTORIES\tSTATUS")
			for _, ct := range reg.Types() {
				property, status := describeType(ct)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", ct.ID, property, len(ct.Factories), status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&registryFile, "registry", "r", "", "Registry manifest with additional configuration types")
	cmd.Flags().BoolVar(&noBuiltin, "no-builtin", false, "Do not include the built-in configuration types")

	return cmd
}

func describeType(ct registry.ConfigurationType) (string, string) {
	property, err := propname.Normalize(ct.ConfigurationPropertyName(), propname.Subject{
		Kind: propname.KindType,
		ID:   ct.ID,
		Name: ct.DisplayName,
	})
	if err != nil {
		return "-", err.Error()
	}

	return property, schema.ClassifyFactories(ct).String()
}
