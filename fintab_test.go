package fintab

import (
	"os"
	"path/filepath"
	"testing"
)

const samplePDF = "testdata/sample.pdf"

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := Probe(filepath.Join(t.TempDir(), "missing.pdf"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenSample(t *testing.T) {
	if _, err := os.Stat(samplePDF); os.IsNotExist(err) {
		t.Skipf("%s not found, skipping", samplePDF)
	}

	doc, err := Open(samplePDF)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	if doc.PageCount() < 1 {
		t.Error("expected at least one page")
	}

	page, err := doc.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if page.GetPageNumber() != 1 {
		t.Errorf("first page number = %d, want 1", page.GetPageNumber())
	}
}

func TestProbeSample(t *testing.T) {
	if _, err := os.Stat(samplePDF); os.IsNotExist(err) {
		t.Skipf("%s not found, skipping", samplePDF)
	}

	info, err := Probe(samplePDF, "")
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.PageCount < 1 {
		t.Errorf("page count = %d, want at least 1", info.PageCount)
	}
	if info.Encrypted {
		t.Error("sample should not be encrypted")
	}
}
