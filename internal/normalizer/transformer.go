package normalizer

import (
	"stagecsv/internal/models"
	"stagecsv/internal/parser"
)

// Transformer assembles output rows.
type Transformer struct {
	parser *parser.Parser
}

// NewTransformer creates a new transformer instance.
func NewTransformer(p *parser.Parser) *Transformer {
	return &Transformer{parser: p}
}

// Transform combines a parsed line with the division and stage of its row.
func (t *Transformer) Transform(row models.RawRow, line models.ParsedLine) models.OutputRow {
	return models.OutputRow{
		CompetitorNumber: line.CompetitorNumber,
		CompetitorName:   line.CompetitorName,
		Stage:            t.parser.NormalizeStage(row.StageRaw),
		Division:         row.Division,
		Points:           line.Points,
		Time:             line.Time,
		HitFactor:        line.HitFactor,
		StagePoints:      line.StagePoints,
		StagePercentage:  line.StagePercentage,
	}
}
