package rowio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"stagecsv/internal/models"
)

// Write writes the header followed by rows.
func Write(w io.Writer, rows []models.OutputRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, models.Header)

	for _, row := range rows {
		records = append(records, row.Record())
	}

	return writeAll(w, records)
}

// WriteFile creates path, including parent directories, and writes the
// header followed by rows.
func WriteFile(path string, rows []models.OutputRow) error {
	return createAndWrite(path, func(w io.Writer) error {
		return Write(w, rows)
	})
}

// WriteRawFile writes raw rows without a header, in the layout Reader expects.
func WriteRawFile(path string, rows []models.RawRow) error {
	return createAndWrite(path, func(w io.Writer) error {
		records := make([][]string, 0, len(rows))
		for _, row := range rows {
			records = append(records, row.Record())
		}

		return writeAll(w, records)
	})
}

func createAndWrite(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(fd); err != nil {
		fd.Close()
		return err
	}

	if err := fd.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}

func writeAll(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}
