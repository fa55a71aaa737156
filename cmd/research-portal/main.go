// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-portal CLI.
// It loads the paper catalog once at startup and exposes listing, selection,
// the terminal explorer, exports, and the SQLite index as subcommands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg holds the resolved settings for the running command.
	cfg types.PortalConfig

	// logger writes structured diagnostics to stderr.
	logger = zap.NewNop()

	// portal is the catalog loaded at startup. It is never modified.
	portal *catalog.Catalog
)

// rootCmd is the base command for the research-portal CLI.
var rootCmd = &cobra.Command{
	Use:   "research-portal",
	Short: "Explore, filter, and read research papers from a metadata catalog",
	Long: `research-portal browses a fixed dataset of research-paper metadata. The
dataset is loaded once from a CSV, YAML, JSON, or SQLite file; studies can be
narrowed by category, title, and year, and any study can be shown as a card
with its summary, keywords, and external links.

Use browse for the interactive explorer, or list, options, show, and export
for scripting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = portalConfig()

		l, err := newLogger(cfg.Verbose)
		if err != nil {
			return err
		}
		logger = l

		if cmd == versionCmd {
			return nil
		}
		return loadCatalog(cfg.DataPath)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: research-portal.yaml in . or ~/.config/research-portal)")
	rootCmd.PersistentFlags().String("data", types.DefaultDataPath, "dataset file: .csv, .yaml, .json, or a .db index")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetDefault("word_wrap", types.DefaultWordWrap)
	viper.SetDefault("style", "auto")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-portal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-portal"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_PORTAL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// portalConfig resolves settings from flags, environment, and config file.
func portalConfig() types.PortalConfig {
	return types.PortalConfig{
		DataPath: viper.GetString("data"),
		WordWrap: viper.GetInt("word_wrap"),
		Style:    viper.GetString("style"),
		Verbose:  viper.GetBool("verbose"),
	}.WithDefaults()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// loadCatalog reads the dataset into portal. A load failure is fatal for
// every command that needs the catalog.
func loadCatalog(path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		logger.Error("Catalog load failed", zap.String("path", path), zap.Error(err))
		return err
	}
	portal = c
	logger.Debug("Catalog loaded", zap.String("path", path), zap.Int("records", c.Len()))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
