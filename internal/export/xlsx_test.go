package export

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"stagecsv/internal/models"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.xlsx")

	rows := []models.OutputRow{
		{
			CompetitorNumber: "118",
			CompetitorName:   "Wan, Chun Yin",
			Stage:            "1",
			Division:         "Open",
			Points:           "71",
			Time:             "8.27",
			HitFactor:        "8.5852",
			StagePoints:      "75.0000",
			StagePercentage:  "100.00",
		},
		{CompetitorNumber: "62", CompetitorName: "Lam Ho Yin", Stage: "2", Division: "Production"},
	}

	if err := WriteXLSX(path, rows); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(got))
	}

	if !reflect.DeepEqual(got[0], models.Header) {
		t.Errorf("Header = %v, want %v", got[0], models.Header)
	}

	if !reflect.DeepEqual(got[1], rows[0].Record()) {
		t.Errorf("Row 1 = %v, want %v", got[1], rows[0].Record())
	}

	// Trailing empty cells are not returned
	if !reflect.DeepEqual(got[2], []string{"62", "Lam Ho Yin", "2", "Production"}) {
		t.Errorf("Row 2 = %v", got[2])
	}
}

func TestWriteXLSX_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := WriteXLSX(path, nil); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	if len(got) != 1 || !reflect.DeepEqual(got[0], models.Header) {
		t.Errorf("Expected header only, got %v", got)
	}
}
