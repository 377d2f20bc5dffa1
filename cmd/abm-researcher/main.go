// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the abm-researcher CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the abm-researcher CLI.
var rootCmd = &cobra.Command{
	Use:   "abm-researcher",
	Short: "Account-based sales intelligence for BDR prep",
	Long: `abm-researcher researches a target company from public web sources,
synthesizes the findings into a structured intelligence record, and renders
a one-page account brief for BDR outreach.

Each pipeline stage is a subcommand: research runs the full collection and
synthesis pipeline, render turns a saved record into the HTML one-pager,
and features prints the capability table used for solution matching.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./abm-researcher.yaml or ~/.config/abm-researcher/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("abm-researcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "abm-researcher"))
		}
	}

	viper.SetEnvPrefix("ABM_RESEARCHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
