package rowio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"stagecsv/internal/models"
)

const header = "competitor_number,competitor_name,stage,division,points,time,hit_factor,stage_points,stage_percentage\n"

func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if buf.String() != header {
		t.Errorf("Write() = %q, want %q", buf.String(), header)
	}
}

func TestWrite_Rows(t *testing.T) {
	var buf bytes.Buffer

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
		{CompetitorNumber: "62", CompetitorName: "Lam Ho Yin", Stage: "2", Division: "Open"},
	}

	if err := Write(&buf, rows); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := header +
		"118,\"Wan, Chun Yin\",1,Open,71,8.27,8.5852,75.0000,100.00\n" +
		"62,Lam Ho Yin,2,Open,,,,,\n"

	if buf.String() != want {
		t.Errorf("Write() = \n%s\nwant \n%s", buf.String(), want)
	}
}

func TestWriteFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "converted.csv")

	if err := WriteFile(path, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	if string(data) != header {
		t.Errorf("Output = %q, want %q", string(data), header)
	}
}

func TestWriteRawFile_ReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	rows := []models.RawRow{
		{Division: "Open", StageRaw: "Stage 1", LineField: "1 71 8.27 8.5852 75.0000 100.00 118 Wan, Chun Yin"},
		{Division: "Production", StageRaw: "", LineField: "2 60 118 Lee"},
	}

	if err := WriteRawFile(path, rows); err != nil {
		t.Fatalf("WriteRawFile failed: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	got := collect(t, r)
	if len(got) != len(rows) {
		t.Fatalf("Expected %d rows, got %d", len(rows), len(got))
	}

	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}
}
