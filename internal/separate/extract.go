// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package separate splits a bulk-generated LaTeX document into three
// thematic fragment files (champs, dual, team), injecting a decorative
// title page before each group of tables.
package separate

import (
	"regexp"
	"strings"

	"github.com/cmsaquatics/guidegen/pkg/types"
)

var (
	subsectionPattern    = regexp.MustCompile(`^\\subsection\{([^}]*)\}`)
	subsubsectionPattern = regexp.MustCompile(`^\\subsubsection\{([^}]*)\}`)
	endDocumentPattern   = regexp.MustCompile(`^\\end\{document\}`)
)

// ScanResult is the outcome of one extraction pass.
type ScanResult struct {
	// Sections holds the extracted records in document order.
	Sections []types.Section

	// Unmatched counts \subsection headings that were not immediately
	// followed by a \subsubsection and were therefore skipped.
	Unmatched int
}

// scanState tracks the scanner position within a heading group.
type scanState int

const (
	seekHeading scanState = iota // waiting for a \subsection
	seekSex                      // heading seen, waiting for its \subsubsection
	inBody                       // accumulating body lines
)

// Scan extracts section records from the document text in a single
// forward pass. A record is a \subsection heading immediately followed
// (blank lines allowed) by a \subsubsection heading, with everything up
// to the next \subsection, \end{document}, or end of input as the body.
// A document with no heading pairs yields an empty result, not an error.
func Scan(text string) ScanResult {
	var res ScanResult
	state := seekHeading
	var name, sex string
	var body []string

	flush := func() {
		res.Sections = append(res.Sections, types.Section{
			Name: name,
			Sex:  sex,
			Body: strings.TrimSpace(strings.Join(body, "\n")),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch state {
		case seekHeading:
			if m := subsectionPattern.FindStringSubmatch(trimmed); m != nil {
				name = m[1]
				state = seekSex
			}

		case seekSex:
			switch {
			case trimmed == "":
				// blank space inside the heading pair is fine
			case subsubsectionPattern.MatchString(trimmed):
				sex = subsubsectionPattern.FindStringSubmatch(trimmed)[1]
				body = body[:0]
				state = inBody
			case subsectionPattern.MatchString(trimmed):
				// heading with no sub-heading: drop it, restart on this one
				res.Unmatched++
				name = subsectionPattern.FindStringSubmatch(trimmed)[1]
			default:
				res.Unmatched++
				state = seekHeading
			}

		case inBody:
			if m := subsectionPattern.FindStringSubmatch(trimmed); m != nil {
				flush()
				name = m[1]
				state = seekSex
				continue
			}
			if endDocumentPattern.MatchString(trimmed) {
				flush()
				state = seekHeading
				continue
			}
			body = append(body, line)
		}
	}

	switch state {
	case seekSex:
		res.Unmatched++
	case inBody:
		flush()
	}
	return res
}
