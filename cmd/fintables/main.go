// Command fintables extracts tables from targeted PDF pages into CSV
// files plus a _metadata.json with validation results. Numbers are never
// converted to floats; they stay strings throughout.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fintab/fintab"
	"github.com/fintab/fintab/internal/pagerange"
	"github.com/fintab/fintab/pkg/extract"
	"github.com/fintab/fintab/pkg/numeric"
	"github.com/fintab/fintab/pkg/output"
	"github.com/fintab/fintab/pkg/pdf"
	"github.com/fintab/fintab/pkg/scan"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "Usage: fintables <pdf_path> <output_dir> <page_numbers>")
		fmt.Fprintln(os.Stderr, "  page_numbers: comma-separated (5,6,7) or ranges (5-10)")
		os.Exit(1)
	}
	pdfPath, outputDir, pageSpec := os.Args[1], os.Args[2], os.Args[3]

	if _, err := os.Stat(pdfPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", pdfPath)
		os.Exit(1)
	}

	pages, err := pagerange.Parse(pageSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create output dir: %v\n", err)
		os.Exit(1)
	}

	doc, err := fintab.Open(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	for _, p := range pages {
		if p < 1 || p > doc.PageCount() {
			fmt.Fprintf(os.Stderr, "  Warning: page %d out of range (1-%d), skipping\n", p, doc.PageCount())
		}
	}

	fmt.Fprintf(os.Stderr, "Extracting tables from %d pages...\n", len(pages))

	result := extract.Batch(doc, pages, extract.DefaultConfig())
	fmt.Fprintf(os.Stderr, "  Detected number format: %s\n", formatName(result.Format))

	text := pageText(doc, pages)
	meta := output.Metadata{
		SourceFile:       absPath(pdfPath),
		PagesExtracted:   pages,
		NumberFormat:     result.Format,
		DetectedScale:    scan.DetectScale(text),
		DetectedCurrency: scan.DetectCurrency(text),
	}

	written := 0
	for _, table := range result.Tables {
		name, err := output.WriteTableFile(outputDir, table.Page, table.Index, table.Rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		written++

		tm := output.NewTableMetadata(name, table)
		meta.Tables = append(meta.Tables, tm)

		fmt.Fprintf(os.Stderr, "  Wrote %s (%d rows, %d validated, %d mismatches)\n",
			name, tm.Rows, tm.Validation.RowsPass, tm.Validation.RowsMismatch)
	}

	metaPath, err := output.WriteMetadata(outputDir, meta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nDone. %d CSV files written to %s\n", written, outputDir)
	fmt.Fprintf(os.Stderr, "Metadata: %s\n", metaPath)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(meta); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func formatName(f numeric.Format) string {
	if f == numeric.PeriodThousands {
		return "Spanish (1.234,56)"
	}
	return "English (1,234.56)"
}

// pageText joins the text of the requested pages for scale and currency
// detection.
func pageText(doc pdf.Document, pages []int) string {
	var b strings.Builder
	for _, p := range pages {
		if p < 1 || p > doc.PageCount() {
			continue
		}
		page, err := doc.GetPage(p - 1)
		if err != nil {
			continue
		}
		b.WriteString(page.ExtractText())
		b.WriteByte('\n')
	}
	return b.String()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
