// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Destination identifies one of the three thematic output files the
// separator routes sections into.
type Destination string

const (
	DestChamps Destination = "champs"
	DestDual   Destination = "dual"
	DestTeam   Destination = "team"
)

// Destinations lists all destinations in output order.
var Destinations = []Destination{DestChamps, DestDual, DestTeam}

// Section is one extracted heading/sub-heading/body triple from the
// generated LaTeX document. Records keep their original document order;
// the only regrouping is the stable contiguous grouping done at output
// time.
type Section struct {
	// Name is the \subsection heading text (the sheet name the tables
	// were generated from).
	Name string `json:"name" yaml:"name"`

	// Sex is the raw \subsubsection label (e.g. "Athena", "Men").
	Sex string `json:"sex" yaml:"sex"`

	// Body is the verbatim content between this heading pair and the
	// next \subsection (or end of document), trimmed of surrounding
	// whitespace.
	Body string `json:"body" yaml:"body"`
}
