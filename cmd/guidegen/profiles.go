// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmsaquatics/guidegen/internal/profiles"
	"github.com/cmsaquatics/guidegen/internal/store"
	"github.com/cmsaquatics/guidegen/pkg/types"
)

// defaultSources lists the workbooks read when the config file names none.
var defaultSources = []types.WorkbookSpec{
	{Label: "SCIAC", File: "SCIAC Event Profiles.xlsx"},
	{Label: "NCAA", File: "NCAA Event Profiles.xlsx"},
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Render event-profile workbooks into LaTeX threshold tables",
	Long: `Profiles reads each configured workbook (sheets "men" and "women"),
caches every sheet as CSV, records the parsed events in the cache
database, and writes one formatted table per event to
eventprofiles.tex in the output directory. Missing workbooks or sheets
are reported and skipped.`,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	paths := pathsFromConfig()

	var st profiles.EventStore
	if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
		s, err := store.Open(paths.CacheDir)
		if err != nil {
			return err
		}
		defer s.Close()
		st = s
	}

	cfg := profiles.Config{
		Paths:   paths,
		Sources: configuredSources(),
	}
	_, err := profiles.Run(context.Background(), cfg, st, os.Stdout)
	return err
}

// configuredSources reads the "sources" list from the config file,
// falling back to the built-in workbook list.
func configuredSources() []types.WorkbookSpec {
	var specs []types.WorkbookSpec
	if err := viper.UnmarshalKey("sources", &specs); err == nil && len(specs) > 0 {
		return specs
	}
	return defaultSources
}

func init() {
	profilesCmd.Flags().Bool("no-store", false, "skip recording parsed events in the cache database")

	rootCmd.AddCommand(profilesCmd)
}
