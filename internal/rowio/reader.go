// Package rowio reads raw result rows from CSV and writes converted rows back out.
package rowio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"stagecsv/internal/models"
)

// ErrMissingInput is returned when the input file does not exist.
var ErrMissingInput = errors.New("input not found")

// Reader yields raw rows from a headerless CSV with up to three columns.
type Reader struct {
	csv     *csv.Reader
	closer  io.Closer
	records int
}

// OpenInput opens an input file, reporting a missing file as ErrMissingInput.
func OpenInput(path string) (*os.File, error) {
	fd, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}

		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return fd, nil
}

// Open opens the CSV file at path for reading.
func Open(path string) (*Reader, error) {
	fd, err := OpenInput(path)
	if err != nil {
		return nil, err
	}

	r := NewReader(fd)
	r.closer = fd

	return r, nil
}

// NewReader wraps r. A leading UTF-8 byte order mark is dropped.
func NewReader(r io.Reader) *Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return &Reader{csv: cr}
}

// Rows returns the remaining rows. Absent trailing columns are empty and
// extra columns are ignored. Iteration stops at the first read error.
func (r *Reader) Rows() iter.Seq2[models.RawRow, error] {
	return func(yield func(models.RawRow, error) bool) {
		for {
			record, err := r.csv.Read()
			if err == io.EOF {
				return
			}

			r.records++

			if err != nil {
				yield(models.RawRow{}, fmt.Errorf("read csv record %d: %w", r.records, err))
				return
			}

			if len(record) == 0 {
				continue
			}

			if !yield(toRawRow(record), nil) {
				return
			}
		}
	}
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}

func toRawRow(record []string) models.RawRow {
	col := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}

		return ""
	}

	return models.RawRow{
		Division:  col(0),
		StageRaw:  col(1),
		LineField: col(2),
	}
}
