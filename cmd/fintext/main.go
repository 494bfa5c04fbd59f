// Command fintext extracts raw text from targeted PDF pages along with
// the positions of every number-like string, as JSON on stdout. The
// number positions let a reviewer cross-check table extraction: a figure
// in the tables should also appear in the page text.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fintab/fintab"
	"github.com/fintab/fintab/internal/pagerange"
	"github.com/fintab/fintab/pkg/output"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: fintext <pdf_path> <page_numbers>")
		fmt.Fprintln(os.Stderr, "  page_numbers: comma-separated (5,6,7) or ranges (5-10)")
		os.Exit(1)
	}
	pdfPath, pageSpec := os.Args[1], os.Args[2]

	if _, err := os.Stat(pdfPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", pdfPath)
		os.Exit(1)
	}

	pages, err := pagerange.Parse(pageSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	doc, err := fintab.Open(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	report := output.TextReport{
		File:           absPath(pdfPath),
		PagesRequested: pages,
	}

	for _, p := range pages {
		if p < 1 || p > doc.PageCount() {
			report.Results = append(report.Results, output.PageText{
				Page:  p,
				Error: fmt.Sprintf("page out of range (1-%d)", doc.PageCount()),
			})
			continue
		}
		page, err := doc.GetPage(p - 1)
		if err != nil {
			report.Results = append(report.Results, output.PageText{
				Page:  p,
				Error: err.Error(),
			})
			continue
		}
		report.Results = append(report.Results, output.NewPageText(p, page.ExtractText()))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
