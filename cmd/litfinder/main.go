// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litfinder CLI. It finds scholarly
// works by DOI, title, author, or keywords through Crossref, checks Unpaywall
// for open-access copies, and prints alternate access links.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litfinder/internal/logging"
	"github.com/pdiddy/litfinder/internal/secrets"
	"github.com/pdiddy/litfinder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Populated by the root command's PersistentPreRunE.
var (
	cfg    types.Config
	logger = zerolog.Nop()
)

// rootCmd is the base command for the litfinder CLI.
var rootCmd = &cobra.Command{
	Use:   "litfinder",
	Short: "Find scholarly works and ways to read them",
	Long: `litfinder looks up scholarly works in Crossref by DOI, title, author, or
free-text keywords and prints normalized records. For a DOI it can check
Unpaywall for a legal open-access copy and list alternate access links.

A query that is a bare DOI (10.xxxx/...) is looked up directly; anything else
is a bibliographic search.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		boot := logging.New(types.LoggingConfig{Level: viper.GetString("log.level"), Format: viper.GetString("log.format")}, os.Stderr)

		s, err := secrets.Load(".secrets/", boot)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			boot.Info().Strs("keys", keys).Msg("loaded secrets")
		}
		for key, value := range secrets.ConfigDefaults(s) {
			viper.SetDefault(key, value)
		}

		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c
		logger = logging.New(cfg.Log, os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litfinder.yaml or ~/.config/litfinder/litfinder.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (default 15s)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")

	_ = viper.BindPFlag("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	setDefaults(types.DefaultConfig())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litfinder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litfinder"))
		}
	}

	viper.SetEnvPrefix("LITFINDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
