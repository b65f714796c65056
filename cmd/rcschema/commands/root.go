package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/takumiyoshikawa/rcschema/internal/builtin"
	"github.com/takumiyoshikawa/rcschema/internal/config"
	"github.com/takumiyoshikawa/rcschema/internal/logging"
	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	logger    zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "rcschema",
		Short: "Generate a JSON Schema for run configuration files",
		Long: `rcschema builds a JSON Schema describing run configuration files from the
registered configuration types, so editors can autocomplete and validate them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Minimum level of reported diagnostics (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.FormatConsole, "Diagnostics format (console or json)")

	cmd.AddCommand(NewSchemaCmd(opts))
	cmd.AddCommand(NewTypesCmd())
	cmd.AddCommand(NewManifestSchemaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadRegistry returns the built-in types, unless skipped, followed by the
// types of the registry manifest at path, if any.
func loadRegistry(path string, noBuiltin bool) (*registry.Registry, error) {
	reg := registry.New()
	if !noBuiltin {
		reg.Register(builtin.Types()...)
	}

	if path != "" {
		m, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		reg.Register(m.ConfigurationTypes()...)
	}

	if reg.Len() == 0 {
		return nil, fmt.Errorf("no configuration types to describe: pass --registry or drop --no-builtin")
	}
	return reg, nil
}
