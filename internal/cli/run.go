// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/internal/logger"
	"github.com/katalvlaran/flowmatch/internal/report"
	"github.com/katalvlaran/flowmatch/match"
)

// run solves the input file at path and renders it to the command's output.
// A nil log is built from cfg.
func run(cmd *cobra.Command, cfg *Config, path string, log logger.Logger) error {
	if log == nil {
		level := cfg.LogLevel
		if cfg.Verbose && level != "none" {
			level = "debug"
		}
		zl, err := logger.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, level)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid logging configuration", err)
		}
		log = zl
	}
	defer func() { _ = log.Zap().Sync() }()
	log.With(zap.String("input", path))

	var opts []flow.Option
	if cfg.Verbose {
		opts = append(opts, flow.WithLogger(log.Zap()))
	}

	log.Debug("solving", zap.String("format", cfg.Format))
	res, err := match.RunFile(path, opts...)
	if err != nil {
		return classify(err)
	}
	if res.Network.LeftCount() == 0 {
		log.Warn("relation has no left entities")
	}
	log.Info("solved",
		zap.Int("nodes", res.Network.Size()),
		zap.Int64("max_flow", res.Answer.MaxFlow()),
		zap.Int("augmentations", res.Flow.Augmentations()),
	)

	if err = report.Write(cmd.OutOrStdout(), cfg.Format, res); err != nil {
		return WrapExitError(ExitCommandError, "cannot write report", err)
	}

	return nil
}
