// Package fintab reconstructs clean, numerically faithful tables from
// financial-report PDFs: word-to-cell assignment over detected cell
// geometry, multi-strategy table detection, presentation-artifact cleanup,
// locale-aware number normalization without float round-trips, and
// exact-decimal row-total validation.
package fintab

import (
	"fmt"

	"github.com/fintab/fintab/pkg/pdf"
)

// Re-export collaborator types for the public API
type (
	Document    = pdf.Document
	Page        = pdf.Page
	Table       = pdf.Table
	Word        = pdf.Word
	Objects     = pdf.Objects
	BoundingBox = pdf.BoundingBox
	Settings    = pdf.Settings
	ProbeInfo   = pdf.ProbeInfo
)

// Re-export option functions
var (
	WithXTolerance = pdf.WithXTolerance
	WithYTolerance = pdf.WithYTolerance
)

// Open opens a PDF file and returns a Document. The primary reader is
// tried first; on failure the fallback reader is tried, and if both fail
// the file is probed with pdfcpu so the error says whether the file is
// encrypted or structurally broken.
func Open(filepath string) (pdf.Document, error) {
	doc, err := pdf.OpenWithLedongthuc(filepath)
	if err == nil {
		return doc, nil
	}

	doc, err = pdf.OpenWithDslipak(filepath)
	if err == nil {
		return doc, nil
	}

	info, probeErr := pdf.Probe(filepath, "")
	if probeErr != nil {
		return nil, probeErr
	}
	return nil, fmt.Errorf("no text backend could open %s (%d pages, encrypted=%v): %w",
		filepath, info.PageCount, info.Encrypted, err)
}

// OpenWithPassword opens an encrypted PDF file. An empty password behaves
// like Open.
func OpenWithPassword(filepath, password string) (pdf.Document, error) {
	if password == "" {
		return Open(filepath)
	}

	doc, err := pdf.OpenWithLedongthucPassword(filepath, password)
	if err == nil {
		return doc, nil
	}

	info, probeErr := pdf.Probe(filepath, password)
	if probeErr != nil {
		return nil, probeErr
	}
	return nil, fmt.Errorf("no text backend could open %s (%d pages, encrypted=%v): %w",
		filepath, info.PageCount, info.Encrypted, err)
}

// Probe validates a PDF without opening a text backend.
func Probe(filepath, password string) (pdf.ProbeInfo, error) {
	return pdf.Probe(filepath, password)
}
