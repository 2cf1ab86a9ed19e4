// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paths holds the filesystem layout shared by both pipelines. Every
// pipeline entry point receives an explicit Paths value; nothing reads
// hard-coded locations.
type Paths struct {
	// SourceDir contains the raw event-profile workbooks (.xlsx).
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// CacheDir receives per-sheet CSV copies and the parsed-event database.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// OutputDir receives the generated LaTeX fragment files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ImageDir contains the highlight photos used on decorative title pages.
	ImageDir string `json:"image_dir" yaml:"image_dir"`
}

// WorkbookSpec names one event-profile workbook for the profiles pipeline.
type WorkbookSpec struct {
	// Label is the short name used in subsection headings and cache
	// file names (e.g. "SCIAC", "NCAA").
	Label string `json:"label" yaml:"label"`

	// File is the workbook file name, resolved under Paths.SourceDir.
	File string `json:"file" yaml:"file"`
}
