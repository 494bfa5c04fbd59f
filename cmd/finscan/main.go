// Command finscan reads every page of a PDF and prints a compact JSON
// page map: table counts, financial keyword hits, and previews. The map
// is small enough to decide which pages to target for extraction.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fintab/fintab"
	"github.com/fintab/fintab/pkg/scan"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: finscan <pdf_path>")
		os.Exit(1)
	}
	pdfPath := os.Args[1]

	if _, err := os.Stat(pdfPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", pdfPath)
		os.Exit(1)
	}

	doc, err := fintab.Open(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open PDF: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	fmt.Fprintf(os.Stderr, "Scanning %d pages...\n", doc.PageCount())

	abs, err := filepath.Abs(pdfPath)
	if err != nil {
		abs = pdfPath
	}
	result := scan.ScanDocument(doc, abs)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
