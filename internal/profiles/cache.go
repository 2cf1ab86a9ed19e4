// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profiles

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV writes the raw rows of one sheet to cacheDir/label_sheet.csv,
// creating the cache directory if needed. It returns the written path.
func WriteCSV(cacheDir, label, sheet string, rows [][]string) (string, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	path := filepath.Join(cacheDir, fmt.Sprintf("%s_%s.csv", label, sheet))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating cache file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
