// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package separate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// InputFile is the default name of the monolithic generated document,
// resolved under the output directory.
const InputFile = "generated_latex.tex"

// Config holds everything one separator run needs.
type Config struct {
	Paths types.Paths

	// InputPath is the full path of the generated document. The
	// separator aborts when it does not exist.
	InputPath string
}

// Summary holds counts from one separator run.
type Summary struct {
	Extracted    int
	Unmatched    int
	Unmapped     int
	FilesWritten int
	Routed       map[types.Destination]int
}

// Run executes the separator pipeline: extract section records from the
// generated document, route them through the mapping, and write one
// fragment file per destination with decorative title pages. A
// destination with zero routed records writes no file and is reported
// on w. Unmapped names and unmatched headings are dropped but counted.
func Run(cfg Config, m Mapping, pool *ImagePool, w io.Writer) (Summary, error) {
	summary := Summary{Routed: make(map[types.Destination]int)}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return summary, fmt.Errorf("reading generated document: %w", err)
	}

	res := Scan(string(data))
	summary.Extracted = len(res.Sections)
	summary.Unmatched = res.Unmatched
	fmt.Fprintf(w, "extracted %d sections (%d unmatched headings skipped)\n",
		summary.Extracted, summary.Unmatched)

	routed := make(map[types.Destination][]types.Section)
	var unmappedNames []string
	seenUnmapped := make(map[string]bool)
	for _, sec := range res.Sections {
		dest, ok := m.Route(sec.Name)
		if !ok {
			summary.Unmapped++
			if !seenUnmapped[sec.Name] {
				seenUnmapped[sec.Name] = true
				unmappedNames = append(unmappedNames, sec.Name)
			}
			continue
		}
		routed[dest] = append(routed[dest], sec)
		summary.Routed[dest]++
	}
	for _, name := range unmappedNames {
		fmt.Fprintf(w, "unmapped: %q dropped from all outputs\n", name)
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating output directory: %w", err)
	}

	for _, dest := range types.Destinations {
		sections := routed[dest]
		if len(sections) == 0 {
			fmt.Fprintf(w, "no sections routed to %s.tex, skipping\n", dest)
			continue
		}

		outPath := filepath.Join(cfg.Paths.OutputDir, string(dest)+".tex")
		content := Assemble(dest, sections, m, pool)
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return summary, fmt.Errorf("writing %s: %w", filepath.Base(outPath), err)
		}
		summary.FilesWritten++
		fmt.Fprintf(w, "written: %s.tex (%d sections)\n", dest, len(sections))
	}

	fmt.Fprintf(w, "\nSeparator summary: %d extracted, %d unmatched, %d unmapped, %d files written\n",
		summary.Extracted, summary.Unmatched, summary.Unmapped, summary.FilesWritten)
	return summary, nil
}
