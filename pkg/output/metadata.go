package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fintab/fintab/pkg/extract"
	"github.com/fintab/fintab/pkg/numeric"
	"github.com/fintab/fintab/pkg/pdf"
)

// MetadataFileName is the batch metadata file written next to the CSVs.
const MetadataFileName = "_metadata.json"

// Metadata is the machine-readable record of one extraction batch.
type Metadata struct {
	SourceFile       string          `json:"source_file"`
	PagesExtracted   []int           `json:"pages_extracted"`
	NumberFormat     numeric.Format  `json:"number_format"`
	DetectedScale    string          `json:"detected_scale,omitempty"`
	DetectedCurrency string          `json:"detected_currency,omitempty"`
	Tables           []TableMetadata `json:"tables"`
}

// TableMetadata describes one extracted table and its validation summary.
type TableMetadata struct {
	File       string            `json:"file"`
	Page       int               `json:"page"`
	TableIndex int               `json:"table_index"`
	Strategy   StrategyMetadata  `json:"strategy"`
	Rows       int               `json:"rows"`
	Columns    int               `json:"columns"`
	Footnotes  []string          `json:"footnotes"`
	Validation ValidationSummary `json:"validation"`
}

// StrategyMetadata records which detection configuration won.
type StrategyMetadata struct {
	VerticalStrategy   string `json:"vertical_strategy"`
	HorizontalStrategy string `json:"horizontal_strategy"`
}

// ValidationSummary aggregates row-total checks; only mismatches carry
// detail since they are the rows a reviewer needs to see.
type ValidationSummary struct {
	RowsChecked  int                     `json:"rows_checked"`
	RowsPass     int                     `json:"rows_pass"`
	RowsMismatch int                     `json:"rows_mismatch"`
	Details      []numeric.RowValidation `json:"details"`
}

// NewTableMetadata summarizes one table result under its CSV filename.
func NewTableMetadata(file string, t extract.TableResult) TableMetadata {
	summary := ValidationSummary{
		RowsChecked: len(t.Validations),
		Details:     []numeric.RowValidation{},
	}
	for _, v := range t.Validations {
		switch v.Status {
		case numeric.StatusPass:
			summary.RowsPass++
		case numeric.StatusMismatch:
			summary.RowsMismatch++
			summary.Details = append(summary.Details, v)
		}
	}

	columns := 0
	for _, row := range t.Rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	footnotes := t.Footnotes
	if footnotes == nil {
		footnotes = []string{}
	}

	return TableMetadata{
		File:       file,
		Page:       t.Page,
		TableIndex: t.Index,
		Strategy:   newStrategyMetadata(t.Settings),
		Rows:       len(t.Rows),
		Columns:    columns,
		Footnotes:  footnotes,
		Validation: summary,
	}
}

func newStrategyMetadata(s pdf.Settings) StrategyMetadata {
	return StrategyMetadata{
		VerticalStrategy:   s.VerticalStrategy,
		HorizontalStrategy: s.HorizontalStrategy,
	}
}

// WriteMetadata writes the batch metadata JSON into dir.
func WriteMetadata(dir string, meta Metadata) (string, error) {
	if meta.Tables == nil {
		meta.Tables = []TableMetadata{}
	}

	path := filepath.Join(dir, MetadataFileName)
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write metadata: %w", err)
	}
	return path, nil
}
