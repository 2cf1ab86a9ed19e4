// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmsaquatics/guidegen/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events parsed by the last profiles run",
	Long: `Events queries the parsed-event database in the cache directory and
lists each event with its season count and year range. Useful for
eyeballing what the profiles run extracted before typesetting.`,
	RunE: runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	paths := pathsFromConfig()

	s, err := store.Open(paths.CacheDir)
	if err != nil {
		return err
	}
	defer s.Close()

	source, _ := cmd.Flags().GetString("source")
	sheet, _ := cmd.Flags().GetString("sheet")

	events, err := s.ListEvents(context.Background(), source, sheet)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	if len(events) == 0 {
		fmt.Println("No events found. Run `guidegen profiles` first.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-8s  %-6s  %-40s  %-7s  %s\n",
		"Source", "Sheet", "Event", "Seasons", "Years")
	for _, ev := range events {
		years := "-"
		if ev.Seasons > 0 {
			years = fmt.Sprintf("%d-%d", ev.FirstYear, ev.LastYear)
		}
		name := ev.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-8s  %-6s  %-40s  %-7d  %s\n",
			ev.Source, ev.Sheet, name, ev.Seasons, years)
	}
	fmt.Fprintf(os.Stdout, "\n%d events\n", len(events))
	return nil
}

func init() {
	eventsCmd.Flags().String("source", "", "filter by workbook label (e.g. SCIAC)")
	eventsCmd.Flags().String("sheet", "", "filter by sheet name (men or women)")
	eventsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(eventsCmd)
}
