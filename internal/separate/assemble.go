// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package separate

import (
	"fmt"
	"strings"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

// destHeaders holds the fixed first lines of each destination file.
var destHeaders = map[types.Destination]string{
	types.DestChamps: "\\section{Championship Records}\n\n",
	types.DestDual:   "\\section{Dual Meet Records}\n\n",
	types.DestTeam:   "% chktex-file 8\n\n\\section{Team Records}\n\n",
}

// Assemble produces one destination document from its routed sections,
// in original order. Consecutive records sharing a name are grouped
// under a single \subsection emission; a non-contiguous repeat of the
// same name starts a fresh group with its own heading. Every record gets
// a decorative title page before its body.
func Assemble(dest types.Destination, sections []types.Section, m Mapping, pool *ImagePool) string {
	var b strings.Builder
	b.WriteString(destHeaders[dest])

	started := false
	var current string
	for _, sec := range sections {
		if !started || sec.Name != current {
			if started {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\\subsection{%s}\n", sec.Name)
			current = sec.Name
			started = true
		}

		b.WriteString(TitlePage(sec.Name, m.SexLabel(sec.Sex), pool.Pick()))

		if body := strings.TrimSpace(sec.Body); body != "" {
			b.WriteString(body)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
