// Package output serializes extraction results: one CSV per table, a
// metadata JSON per batch, and text reports for cross-validation.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteCSV writes table rows with every field quoted. Figures often
// contain commas even after cleaning, and quoting everything keeps the
// files diffable across extraction runs.
func WriteCSV(w io.Writer, rows [][]string) error {
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(strings.TrimSpace(cell), `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// TableFileName names a table's CSV by page and index within the page.
func TableFileName(page, index int) string {
	return fmt.Sprintf("page_%d_table_%d.csv", page, index)
}

// WriteTableFile writes one table's CSV into dir.
func WriteTableFile(dir string, page, index int, rows [][]string) (string, error) {
	name := TableFileName(page, index)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return name, nil
}
