package main

import (
	"github.com/aleister1102/sidediff/internal/config"
	"github.com/spf13/cobra"
)

// AppFlags holds the command line overrides for the loaded configuration
type AppFlags struct {
	GlobalConfigFile string
	Layout           string
	LogLevel         string
	LogFile          string
}

// registerFlags binds the flags of the root command to flags
func registerFlags(cmd *cobra.Command, flags *AppFlags) {
	cmd.Flags().StringVarP(&flags.GlobalConfigFile, "config", "c", "", "Path to a YAML/JSON configuration file. If not set, $"+config.ConfigPathEnvVar+" and ./sidediff.yaml are tried.")
	cmd.Flags().StringVarP(&flags.Layout, "layout", "l", "", "Output layout: paired (default) or plain")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Also write logs to this file (rotated)")
}

// applyOverrides copies the flags the user set onto cfg
func applyOverrides(cmd *cobra.Command, flags *AppFlags, cfg *config.GlobalConfig) {
	if cmd.Flags().Changed("layout") {
		cfg.DiffConfig.Layout = flags.Layout
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogConfig.LogLevel = flags.LogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogConfig.LogFile = flags.LogFile
	}
}
