// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profiles reads event-profile workbooks, caches each sheet as
// CSV, groups rows into events, and renders one LaTeX table per event
// into a single eventprofiles.tex fragment.
package profiles

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet opens the workbook at path and returns the raw rows of the
// named sheet. Cell values come back as formatted strings; short rows
// are returned as-is (trailing empty cells are not padded).
func ReadSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}
