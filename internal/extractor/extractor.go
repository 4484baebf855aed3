// Package extractor turns stage result report text into raw result rows.
//
// Reports list results per division and stage:
//
//	OPEN -- Overall Stage Results
//	Stage 1 -- Stage 1
//	Rank PTS TIME FACTOR POINTS PERCENT # Name
//	1 71 8.27 8.5852 75.0000 100.00 118 Wan, Chun Yin
//
// Division and stage headings are remembered and attached to every
// following data line. Column headings and short legend lines are dropped.
package extractor

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"stagecsv/internal/models"
)

// maxLineSize bounds a single report line.
const maxLineSize = 16 << 20

// legendMaxLen is the length below which a line mentioning event, match or
// rank is treated as a legend rather than a result.
const legendMaxLen = 60

// Stats counts how report lines were classified.
type Stats struct {
	Lines     int `json:"lines"`
	Divisions int `json:"divisions"`
	Stages    int `json:"stages"`
	Skipped   int `json:"skipped"`
	Rows      int `json:"rows"`
}

// Extractor classifies report lines.
type Extractor struct {
	divisionPattern     *regexp.Regexp
	overallPattern      *regexp.Regexp
	stagePattern        *regexp.Regexp
	columnHeaderPattern *regexp.Regexp
	legendPattern       *regexp.Regexp
}

// NewExtractor creates a new extractor instance.
func NewExtractor() *Extractor {
	return &Extractor{
		// Pattern for "OPEN -- Overall Stage Results"
		divisionPattern: regexp.MustCompile(`(?i)^([A-Z\s&-]+)\s+--\s+Overall Stage Results`),
		overallPattern:  regexp.MustCompile(`(?i)Overall Stage Results`),
		// Pattern for "Stage 1" or "Stage 1 -- Stage 1"
		stagePattern:        regexp.MustCompile(`(?i)Stage\s*(\d+|[A-Za-z0-9]+)`),
		columnHeaderPattern: regexp.MustCompile(`(?i)\bPTS\b|\bTIME\b|\bFACTOR\b|\bPOINTS\b|\bPERCENT\b|\bName\b|\b#\b`),
		legendPattern:       regexp.MustCompile(`(?i)Event|Match|Rank|Ranking`),
	}
}

// Extract reads report lines from r and returns one raw row per data line.
func (e *Extractor) Extract(r io.Reader) ([]models.RawRow, Stats, error) {
	var (
		rows     []models.RawRow
		stats    Stats
		division string
		stage    string
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for sc.Scan() {
		line := strings.Join(strings.Fields(sc.Text()), " ")
		if line == "" {
			continue
		}

		stats.Lines++

		if m := e.divisionPattern.FindStringSubmatch(line); m != nil {
			division = strings.TrimSpace(m[1])
			stats.Divisions++

			continue
		}

		if e.overallPattern.MatchString(line) {
			stats.Skipped++
			continue
		}

		if m := e.stagePattern.FindString(line); m != "" {
			stage = strings.TrimSpace(m)
			stats.Stages++

			continue
		}

		if e.columnHeaderPattern.MatchString(line) || e.isLegend(line) {
			stats.Skipped++
			continue
		}

		rows = append(rows, models.RawRow{
			Division:  division,
			StageRaw:  stage,
			LineField: line,
		})
	}

	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read report: %w", err)
	}

	stats.Rows = len(rows)

	return rows, stats, nil
}

func (e *Extractor) isLegend(line string) bool {
	return len(line) < legendMaxLen && e.legendPattern.MatchString(line)
}
