// Package normalizer turns raw result rows into converted output rows.
package normalizer

import (
	"fmt"
	"iter"

	"stagecsv/internal/models"
	"stagecsv/internal/parser"
)

// Stats summarises one conversion run.
type Stats struct {
	Read     int `json:"read"`
	Skipped  int `json:"skipped"`
	Grammar  int `json:"grammar"`
	Fallback int `json:"fallback"`
	Dropped  int `json:"dropped"`
	Written  int `json:"written"`
}

// Processor handles row validation, parsing and assembly.
type Processor struct {
	validator   *Validator
	parser      *parser.Parser
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	p := parser.NewParser()

	return &Processor{
		validator:   NewValidator(),
		parser:      p,
		transformer: NewTransformer(p),
	}
}

// Process consumes rows and returns the converted rows in input order.
// Rows without a result line or whose line cannot be parsed are left out
// and only show up in the returned Stats. A read error aborts the run.
func (p *Processor) Process(rows iter.Seq2[models.RawRow, error]) ([]models.OutputRow, Stats, error) {
	var (
		out   []models.OutputRow
		stats Stats
	)

	for row, err := range rows {
		if err != nil {
			return nil, stats, fmt.Errorf("reading rows failed: %w", err)
		}

		stats.Read++

		// 1. Validate the row
		if err := p.validator.Validate(row); err != nil {
			stats.Skipped++
			continue
		}

		// 2. Parse the result line
		result := p.parser.Parse(row.LineField)
		if !result.OK() {
			stats.Dropped++
			continue
		}

		if result.Tier == parser.TierGrammar {
			stats.Grammar++
		} else {
			stats.Fallback++
		}

		// 3. Assemble the output row
		out = append(out, p.transformer.Transform(row, result.Line))
	}

	stats.Written = len(out)

	return out, stats, nil
}
