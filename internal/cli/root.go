// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/internal/logger"
)

// Usage is printed, and nothing is computed, unless exactly one input file
// is given.
const Usage = "Usage: flowmatch [flags] <file>"

// Option configures the root command.
type Option func(*options)

type options struct {
	log logger.Logger
}

// WithLogger makes the command log to l instead of a logger built from
// --log-format and --log-level.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// NewRootCommand creates the flowmatch command.
func NewRootCommand(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	v := newViper()

	cmd := &cobra.Command{
		Use:   "flowmatch [flags] <file>",
		Short: "Maximum bipartite matching via max-flow",
		Long: `flowmatch reads an eligibility relation, one "<left>><right1>,<right2>,..." line
per left entity (or a YAML mapping for .yaml/.yml files), and prints a maximum
matching computed with Edmonds-Karp on the unit-capacity flow network.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), Usage)
				return err
			}
			configPath, err := cmd.Flags().GetString(configFlag)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args[0], o.log)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})
	bindFlags(cmd, v)

	return cmd
}
