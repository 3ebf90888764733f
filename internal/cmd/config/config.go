// Package config provides the config subcommand, which prints the layout
// an invocation would scaffold against.
package config

import (
	"fmt"

	"github.com/aockit/aocgen/internal/cmdutil"
	internalconfig "github.com/aockit/aocgen/internal/config"
	"github.com/aockit/aocgen/internal/iostreams"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigOptions contains the options for the config command.
type ConfigOptions struct {
	IOStreams *iostreams.IOStreams
	Layout    func() (*internalconfig.Layout, error)
}

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	opts := &ConfigOptions{
		IOStreams: f.IOStreams,
		Layout:    f.Layout,
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved scaffold layout",
		Long: `Prints the data root, solutions root, source extension, and day
directory prefix as YAML, resolved from defaults and AOCGEN_* environment
variables. No configuration file is read or written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configRun(opts)
		},
	}

	return cmd
}

func configRun(opts *ConfigOptions) error {
	layout, err := opts.Layout()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	fmt.Fprint(opts.IOStreams.Out, string(out))
	return nil
}
