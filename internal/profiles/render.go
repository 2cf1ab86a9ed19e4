// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profiles

import (
	"fmt"
	"strings"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// RenderEvent emits one LaTeX table block for an event: a bold title and
// a nine-column tabular with a colored two-row header. Data rows
// alternate gray!10 (even index) and white (odd index) backgrounds.
func RenderEvent(ev types.Event) string {
	lines := []string{
		fmt.Sprintf(`\textbf{%s}`, ev.Name),
		"",
		`\begin{flushleft}`,
		`\begin{tabular}{|>{\columncolor{blue!20}}c|c|c|c|c|c|c|c|c|}`,
		`\hline`,
		`\rowcolor{blue!30}`,
		`Year & \multicolumn{4}{c|}{Prelims} & \multicolumn{4}{c|}{Finals} \\`,
		`\cline{2-9}`,
		`\rowcolor{blue!30}`,
		`& 1st & 8th & 9th & 16th & 1st & 8th & 9th & 16th \\`,
		`\hline`,
	}

	for i, row := range ev.Rows {
		if i%2 == 0 {
			lines = append(lines, `\rowcolor{gray!10}`)
		} else {
			lines = append(lines, `\rowcolor{white}`)
		}
		cells := make([]string, 0, 9)
		cells = append(cells, fmt.Sprintf("%d", row.Year))
		cells = append(cells, row.Prelims[:]...)
		cells = append(cells, row.Finals[:]...)
		lines = append(lines, strings.Join(cells, " & ")+` \\`)
	}

	lines = append(lines,
		`\hline`,
		`\end{tabular}`,
		`\end{flushleft}`,
		"",
	)
	return strings.Join(lines, "\n")
}

// RenderEvents renders every event in order, one block per event.
func RenderEvents(events []types.Event) string {
	blocks := make([]string, len(events))
	for i, ev := range events {
		blocks[i] = RenderEvent(ev)
	}
	return strings.Join(blocks, "\n")
}
