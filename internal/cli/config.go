// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/flowmatch/internal/report"
)

const (
	formatFlag    = "format"
	verboseFlag   = "verbose"
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
	configFlag    = "config"

	envPrefix  = "FLOWMATCH"
	configName = "flowmatch"
)

// Config is the resolved command configuration.
// Precedence: flag > FLOWMATCH_* environment > config file > default.
type Config struct {
	Format    string
	Verbose   bool
	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:    report.FormatText,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// bindFlags declares the command flags and binds them to v.
func bindFlags(command *cobra.Command, v *viper.Viper) {
	defaultConfig := DefaultConfig()
	flags := command.Flags()

	flags.String(formatFlag, defaultConfig.Format, "output format (text|json|yaml|dot)")
	mustBindPFlag(v, formatFlag, flags.Lookup(formatFlag))

	flags.BoolP(verboseFlag, "v", defaultConfig.Verbose, "trace every augmenting path at debug level")
	mustBindPFlag(v, verboseFlag, flags.Lookup(verboseFlag))

	flags.String(logFormatFlag, defaultConfig.LogFormat, "the log format to output logs in (text|json)")
	mustBindPFlag(v, logFormatFlag, flags.Lookup(logFormatFlag))

	flags.String(logLevelFlag, defaultConfig.LogLevel, "the log level to use (debug|info|warn|error|none)")
	mustBindPFlag(v, logLevelFlag, flags.Lookup(logLevelFlag))

	flags.String(configFlag, "", "path to a YAML config file (default ./flowmatch.yaml or $HOME/.flowmatch/flowmatch.yaml)")
}

// newViper prepares a viper instance for environment lookups.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the optional config file and resolves Config from v.
func loadConfig(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.flowmatch")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, WrapExitError(ExitCommandError, "cannot load config", err)
		}
	}

	cfg := &Config{
		Format:    v.GetString(formatFlag),
		Verbose:   v.GetBool(verboseFlag),
		LogFormat: v.GetString(logFormatFlag),
		LogLevel:  v.GetString(logLevelFlag),
	}
	if !report.IsValidFormat(cfg.Format) {
		return nil, NewExitError(ExitCommandError, "invalid format "+cfg.Format+": must be one of "+strings.Join(report.Formats, ", "))
	}

	return cfg, nil
}
