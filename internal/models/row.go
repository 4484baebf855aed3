// Package models defines the row types shared by the reader, parser and writer.
package models

// Header is the fixed first row of every converted file.
var Header = []string{
	"competitor_number",
	"competitor_name",
	"stage",
	"division",
	"points",
	"time",
	"hit_factor",
	"stage_points",
	"stage_percentage",
}

// RawRow is one input record: division, stage label and the free-text result line.
type RawRow struct {
	Division  string `json:"division"`
	StageRaw  string `json:"stageRaw"`
	LineField string `json:"lineField"`
}

// Record returns the row in input column order.
func (r RawRow) Record() []string {
	return []string{r.Division, r.StageRaw, r.LineField}
}

// ParsedLine holds the fields recovered from a result line.
// Values are kept as they appear in the report text.
type ParsedLine struct {
	CompetitorNumber string `json:"competitorNumber"`
	CompetitorName   string `json:"competitorName"`
	Points           string `json:"points"`
	Time             string `json:"time"`
	HitFactor        string `json:"hitFactor"`
	StagePoints      string `json:"stagePoints"`
	StagePercentage  string `json:"stagePercentage"`
}

// OutputRow is a single converted row.
type OutputRow struct {
	CompetitorNumber string `json:"competitorNumber"`
	CompetitorName   string `json:"competitorName"`
	Stage            string `json:"stage"`
	Division         string `json:"division"`
	Points           string `json:"points"`
	Time             string `json:"time"`
	HitFactor        string `json:"hitFactor"`
	StagePoints      string `json:"stagePoints"`
	StagePercentage  string `json:"stagePercentage"`
}

// Record returns the row in Header order.
func (r OutputRow) Record() []string {
	return []string{
		r.CompetitorNumber,
		r.CompetitorName,
		r.Stage,
		r.Division,
		r.Points,
		r.Time,
		r.HitFactor,
		r.StagePoints,
		r.StagePercentage,
	}
}
