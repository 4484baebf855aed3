package integration

import (
	"os"
	"path/filepath"
	"testing"

	"stagecsv/internal/extractor"
	"stagecsv/internal/normalizer"
	"stagecsv/internal/rowio"
)

func TestPipeline_StageReport(t *testing.T) {
	// Path to fixtures
	reportPath := filepath.Join("..", "fixtures", "stage_report.txt")
	goldenPath := filepath.Join("..", "fixtures", "stage_report_converted.csv")

	report, err := os.Open(reportPath)
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer report.Close()

	// Extract raw rows from the report text
	raw, extractStats, err := extractor.NewExtractor().Extract(report)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if extractStats.Divisions != 2 || extractStats.Stages != 3 {
		t.Errorf("Expected 2 divisions and 3 stages, got %+v", extractStats)
	}

	tmpDir := t.TempDir()
	rowsPath := filepath.Join(tmpDir, "extracted_rows.csv")
	convertedPath := filepath.Join(tmpDir, "converted.csv")

	if err := rowio.WriteRawFile(rowsPath, raw); err != nil {
		t.Fatalf("WriteRawFile failed: %v", err)
	}

	// Convert (simulating the 'convert' command)
	r, err := rowio.Open(rowsPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	rows, stats, err := normalizer.NewProcessor().Process(r.Rows())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if stats.Grammar != 6 || stats.Fallback != 1 || stats.Dropped != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	if err := rowio.WriteFile(convertedPath, rows); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(convertedPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if string(got) != string(want) {
		t.Errorf("Converted output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
