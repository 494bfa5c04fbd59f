// Command finbatch processes a directory of PDF financial reports:
// each PDF is scanned for financial pages, its tables extracted and
// classified by statement type, and the CSVs written to a per-period
// directory. A JSON summary of the whole batch goes to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/fintab/fintab"
	"github.com/fintab/fintab/pkg/extract"
	"github.com/fintab/fintab/pkg/numeric"
	"github.com/fintab/fintab/pkg/output"
	"github.com/fintab/fintab/pkg/scan"
)

const maxPagesPerPDF = 15

// batchConfig is the optional YAML configuration file.
type batchConfig struct {
	Workers int            `yaml:"workers"`
	Clean   extract.Config `yaml:"clean"`
}

// pdfResult summarizes one processed PDF for the batch report.
type pdfResult struct {
	File           string            `json:"file"`
	Period         string            `json:"period"`
	Status         string            `json:"status"`
	PagesExtracted []int             `json:"pages_extracted,omitempty"`
	NumberFormat   numeric.Format    `json:"number_format,omitempty"`
	Tables         map[string]string `json:"tables"`
}

type batchSummary struct {
	TotalPDFs  int         `json:"total_pdfs"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Results    []pdfResult `json:"results"`
}

func main() {
	outputDir := flag.String("output-dir", "", "base output directory (default: next to each PDF)")
	configPath := flag.String("config", "", "YAML config file with workers and cleaning thresholds")
	workers := flag.Int("workers", 4, "number of PDFs processed concurrently")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: finbatch [flags] <pdf_directory>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	pdfDir := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := batchConfig{Workers: *workers, Clean: extract.DefaultConfig()}
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			logger.Error("cannot load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	info, err := os.Stat(pdfDir)
	if err != nil || !info.IsDir() {
		logger.Error("not a directory", "path", pdfDir)
		os.Exit(1)
	}

	pdfs, err := filepath.Glob(filepath.Join(pdfDir, "*.pdf"))
	if err != nil || len(pdfs) == 0 {
		logger.Error("no PDF files found", "path", pdfDir)
		os.Exit(1)
	}
	sort.Strings(pdfs)

	logger.Info("batch start", "pdfs", len(pdfs), "workers", cfg.Workers)

	results := make([]pdfResult, len(pdfs))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range pdfs {
		i, path := i, path
		g.Go(func() error {
			results[i] = processPDF(logger, path, *outputDir, cfg.Clean)
			return nil
		})
	}
	g.Wait()

	summary := batchSummary{TotalPDFs: len(results), Results: results}
	for _, r := range results {
		if r.Status == "ok" {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	logger.Info("batch complete",
		"processed", summary.TotalPDFs,
		"successful", summary.Successful,
		"failed", summary.Failed)

	typeCoverage := map[string]int{}
	for _, r := range results {
		for key := range r.Tables {
			typeCoverage[key]++
		}
	}
	for _, key := range sortedKeys(typeCoverage) {
		logger.Info("statement coverage", "type", key, "quarters", typeCoverage[key])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(summary); err != nil {
		logger.Error("cannot write summary", "error", err)
		os.Exit(1)
	}
}

// processPDF runs the full pipeline for one report: scan, select pages,
// extract, classify, write CSVs and metadata. Failures are reported in
// the result status rather than aborting the batch.
func processPDF(logger *slog.Logger, pdfPath, outputBase string, clean extract.Config) pdfResult {
	period := scan.DerivePeriod(pdfPath)
	result := pdfResult{
		File:   pdfPath,
		Period: period,
		Tables: map[string]string{},
	}

	outDir := filepath.Join(filepath.Dir(pdfPath), period+"_tables")
	if outputBase != "" {
		outDir = filepath.Join(outputBase, period+"_tables")
	}

	logger.Info("processing", "file", filepath.Base(pdfPath), "period", period)

	doc, err := fintab.Open(pdfPath)
	if err != nil {
		logger.Error("cannot open", "file", pdfPath, "error", err)
		result.Status = "open_failed"
		return result
	}
	defer doc.Close()

	docMap := scan.ScanDocument(doc, pdfPath)
	pages := scan.SelectPages(docMap, maxPagesPerPDF)
	if len(pages) == 0 {
		logger.Warn("no financial pages", "file", filepath.Base(pdfPath))
		result.Status = "no_financial_pages"
		return result
	}
	sort.Ints(pages)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error("cannot create output dir", "dir", outDir, "error", err)
		result.Status = "output_failed"
		return result
	}

	batch := extract.Batch(doc, pages, clean)
	result.PagesExtracted = batch.Pages
	result.NumberFormat = batch.Format

	pageInfo := map[int]scan.PageInfo{}
	for _, p := range docMap.Pages {
		pageInfo[p.Page] = p
	}

	meta := output.Metadata{
		SourceFile:     pdfPath,
		PagesExtracted: batch.Pages,
		NumberFormat:   batch.Format,
	}

	used := map[string]bool{}
	for _, table := range batch.Tables {
		stmtType, score := scan.ClassifyTable(table.Rows)
		if score < 1 {
			if info, ok := pageInfo[table.Page]; ok {
				stmtType, score = scan.ClassifyPage(info)
			}
		}

		base := fmt.Sprintf("page_%d_table_%d", table.Page, table.Index)
		if score >= 1 && stmtType != "" {
			base = string(stmtType)
		}
		name, key := uniqueName(used, base, period)

		path := filepath.Join(outDir, name)
		f, err := os.Create(path)
		if err != nil {
			logger.Error("cannot write table", "path", path, "error", err)
			continue
		}
		werr := output.WriteCSV(f, table.Rows)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			logger.Error("cannot write table", "path", path, "error", werr)
			continue
		}

		meta.Tables = append(meta.Tables, output.NewTableMetadata(name, table))
		result.Tables[key] = path
	}

	if _, err := output.WriteMetadata(outDir, meta); err != nil {
		logger.Error("cannot write metadata", "dir", outDir, "error", err)
	}

	logger.Info("extracted",
		"file", filepath.Base(pdfPath),
		"pages", len(batch.Pages),
		"tables", len(batch.Tables),
		"format", batch.Format)

	result.Status = "ok"
	return result
}

// uniqueName reserves a CSV filename for base and period, suffixing a
// counter when a statement type appears more than once in a report.
func uniqueName(used map[string]bool, base, period string) (name, key string) {
	name = fmt.Sprintf("%s_%s.csv", base, period)
	key = base
	for counter := 2; used[name]; counter++ {
		key = fmt.Sprintf("%s_%d", base, counter)
		name = fmt.Sprintf("%s_%s.csv", key, period)
	}
	used[name] = true
	return name, key
}

func loadConfig(path string, cfg *batchConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
