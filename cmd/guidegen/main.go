// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the guidegen CLI, the build tool
// for the swim & dive media guide LaTeX fragments.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the guidegen CLI.
var rootCmd = &cobra.Command{
	Use:   "guidegen",
	Short: "Build LaTeX fragments for the swim & dive media guide",
	Long: `guidegen produces the generated sections of the media guide. Each build
step is a subcommand: profiles reads the event-profile workbooks and
renders the threshold tables, separate splits the bulk-generated record
tables into themed files with decorative title pages, and events lists
what the last profiles run parsed.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./guidegen.yaml or ~/.config/guidegen/config.yaml)")
	pf.String("source-dir", "raw_data", "directory containing the event-profile workbooks")
	pf.String("cache-dir", "processed_data", "directory for CSV copies and the parsed-event database")
	pf.String("output-dir", "sections", "directory for generated LaTeX fragments")
	pf.String("image-dir", filepath.Join("assets", "highlights", "Highlights"), "directory containing highlight photos")

	viper.BindPFlag("source_dir", pf.Lookup("source-dir"))
	viper.BindPFlag("cache_dir", pf.Lookup("cache-dir"))
	viper.BindPFlag("output_dir", pf.Lookup("output-dir"))
	viper.BindPFlag("image_dir", pf.Lookup("image-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("guidegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "guidegen"))
		}
	}

	viper.SetEnvPrefix("GUIDEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pathsFromConfig builds the explicit Paths value every pipeline entry
// point receives.
func pathsFromConfig() types.Paths {
	return types.Paths{
		SourceDir: viper.GetString("source_dir"),
		CacheDir:  viper.GetString("cache_dir"),
		OutputDir: viper.GetString("output_dir"),
		ImageDir:  viper.GetString("image_dir"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
