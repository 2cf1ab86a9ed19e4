// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profiles

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// OutputFile is the fragment the profiles pipeline writes into the
// output directory.
const OutputFile = "eventprofiles.tex"

// Sheets lists the sheet names read from every workbook, in output order.
var Sheets = []string{"men", "women"}

// EventStore persists parsed sheets. The SQLite store implements it;
// tests use fakes.
type EventStore interface {
	PutSheet(ctx context.Context, data types.SheetData) error
}

// Config holds everything one profiles run needs.
type Config struct {
	Paths   types.Paths
	Sources []types.WorkbookSpec
}

// Summary holds counts from one profiles run.
type Summary struct {
	SheetsRead    int
	SheetsMissing int
	Events        int
	RowsCached    int
}

var titleCaser = cases.Title(language.English)

// Run executes the profiles pipeline: for each workbook and sheet, read
// the rows, cache them as CSV, parse events, persist them to the store
// (when non-nil), and render the tables. The assembled fragment is
// written to Paths.OutputDir/eventprofiles.tex. A missing workbook or
// sheet is reported on w and skipped; only I/O failures on the cache or
// output side abort the run.
func Run(ctx context.Context, cfg Config, st EventStore, w io.Writer) (Summary, error) {
	var summary Summary

	lines := []string{`\section{Event Profiles}`, ""}

	for _, src := range cfg.Sources {
		lines = append(lines, fmt.Sprintf(`\subsection{%ss}`, src.Label), "")

		path := filepath.Join(cfg.Paths.SourceDir, src.File)
		for _, sheet := range Sheets {
			lines = append(lines, fmt.Sprintf(`\subsubsection{%s}`, titleCaser.String(sheet)), "")

			rows, err := ReadSheet(path, sheet)
			if err != nil {
				fmt.Fprintf(w, "missing: %s/%s (%v)\n", src.Label, sheet, err)
				summary.SheetsMissing++
				lines = append(lines, fmt.Sprintf("%% No data available for %s %s", src.Label, sheet), "")
				continue
			}

			if _, err := WriteCSV(cfg.Paths.CacheDir, src.Label, sheet, rows); err != nil {
				return summary, err
			}
			summary.RowsCached += len(rows)

			events := ParseEvents(rows)
			if st != nil {
				data := types.SheetData{Source: src.Label, Sheet: sheet, Events: events}
				if err := st.PutSheet(ctx, data); err != nil {
					return summary, fmt.Errorf("storing %s/%s: %w", src.Label, sheet, err)
				}
			}

			fmt.Fprintf(w, "read: %s/%s (%d events)\n", src.Label, sheet, len(events))
			summary.SheetsRead++
			summary.Events += len(events)

			lines = append(lines, RenderEvents(events))
		}
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(cfg.Paths.OutputDir, OutputFile)
	if err := os.WriteFile(outPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return summary, fmt.Errorf("writing %s: %w", OutputFile, err)
	}

	fmt.Fprintf(w, "\nProfiles summary: %d sheets read, %d missing, %d events, %d rows cached\n",
		summary.SheetsRead, summary.SheetsMissing, summary.Events, summary.RowsCached)
	return summary, nil
}
