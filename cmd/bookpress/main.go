// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookpress CLI.
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

// rootCmd is the base command for the bookpress CLI.
var rootCmd = &cobra.Command{
	Use:   "bookpress",
	Short: "Convert PDF and EPUB sources into chaptered XML books",
	Long: `bookpress converts source documents into a normalized section model and
emits one XML file per chapter plus a master book.xml referencing them,
a manifest, and a packaged archive.

PDF text is extracted with Poppler's pdftohtml and folded into sections
by heading heuristics; EPUB spines map one section per content file.
Batch runs record per-file outcomes in a CSV report and a local history
database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookpress.yaml or ~/.config/bookpress/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookpress")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookpress"))
		}
	}

	viper.SetEnvPrefix("BOOKPRESS")
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
