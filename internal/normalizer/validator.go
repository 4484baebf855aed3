package normalizer

import (
	"errors"
	"strings"

	"stagecsv/internal/models"
)

// ErrEmptyLine is returned for rows without a result line.
var ErrEmptyLine = errors.New("row has no result line")

// Validator handles row validation.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that the row carries something to parse.
func (v *Validator) Validate(row models.RawRow) error {
	if strings.TrimSpace(row.LineField) == "" {
		return ErrEmptyLine
	}

	return nil
}
