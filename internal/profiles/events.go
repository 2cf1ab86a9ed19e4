// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profiles

import (
	"strconv"
	"strings"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// headerRows is the number of scaffolding rows above the data in every
// event-profile sheet (title block plus the column legend).
const headerRows = 6

// Column offsets within a data row. Column 6 is a spacer between the
// prelim and final blocks.
const (
	colEvent      = 0
	colYear       = 1
	colPrelimFrom = 2
	colFinalFrom  = 7
)

// ParseEvents walks the raw rows of one sheet and groups them into
// events. A new event starts at any row whose first column is non-empty;
// rows with a parseable year attach an EventRow to the current event.
// Rows without a usable year are skipped. Events with zero year rows are
// dropped.
func ParseEvents(rows [][]string) []types.Event {
	var events []types.Event
	var current *types.Event

	for i := headerRows; i < len(rows); i++ {
		row := rows[i]

		if name := strings.TrimSpace(cell(row, colEvent)); name != "" {
			if current != nil && len(current.Rows) > 0 {
				events = append(events, *current)
			}
			current = &types.Event{Name: name}
		}

		year, ok := parseYear(cell(row, colYear))
		if !ok || current == nil {
			continue
		}

		er := types.EventRow{Year: year}
		for j := 0; j < 4; j++ {
			er.Prelims[j] = strings.TrimSpace(cell(row, colPrelimFrom+j))
			er.Finals[j] = strings.TrimSpace(cell(row, colFinalFrom+j))
		}
		current.Rows = append(current.Rows, er)
	}

	if current != nil && len(current.Rows) > 0 {
		events = append(events, *current)
	}
	return events
}

// cell returns row[i], or "" when the row is too short. Spreadsheet
// readers drop trailing empty cells, so short rows are routine.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseYear accepts integer years and float-formatted spreadsheet values
// like "2021.0". Zero and negative values are rejected.
func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, y > 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	y := int(f)
	return y, y > 0 && float64(y) == f
}
