package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takumiyoshikawa/rcschema/internal/schema"
	"github.com/takumiyoshikawa/rcschema/internal/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rcschema",
		Long:  `Print the version number of rcschema and the JSON Schema dialect it generates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.Info())
			fmt.Fprintln(out, "schema dialect:", schema.Draft)
			return nil
		},
	}
}
