// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EventRow holds one season line for an event: the year plus the four
// prelim and four final threshold cells (1st, 8th, 9th, 16th place).
// Missing thresholds stay as empty strings and render as empty cells.
type EventRow struct {
	Year    int       `json:"year" yaml:"year"`
	Prelims [4]string `json:"prelims" yaml:"prelims"`
	Finals  [4]string `json:"finals" yaml:"finals"`
}

// Event is a named competition category spanning multiple seasons of
// threshold results (e.g. "100 Free").
type Event struct {
	Name string     `json:"name" yaml:"name"`
	Rows []EventRow `json:"rows" yaml:"rows"`
}

// SheetData is the parsed content of one workbook sheet.
type SheetData struct {
	// Source is the workbook label (e.g. "SCIAC").
	Source string `json:"source" yaml:"source"`

	// Sheet is the sheet name (e.g. "men", "women").
	Sheet string `json:"sheet" yaml:"sheet"`

	// Events lists the parsed events in sheet order.
	Events []Event `json:"events" yaml:"events"`
}
