// Package parser extracts competitor results from report lines.
package parser

import (
	"regexp"
	"strings"

	"stagecsv/internal/models"
)

// DefaultStage is used when a stage label carries no number.
const DefaultStage = "1"

// space matches one whitespace rune, including no-break and ideographic spaces.
const space = `[\s\p{Z}\x{85}]`

// Tier records which strategy produced a result.
type Tier int

// Parse tiers.
const (
	// TierNone means the line could not be parsed.
	TierNone Tier = iota
	// TierGrammar means the whole line matched the result grammar.
	TierGrammar
	// TierFallback means only the competitor was recovered from a token scan.
	TierFallback
)

// String returns the tier name used in logs.
func (t Tier) String() string {
	switch t {
	case TierGrammar:
		return "grammar"
	case TierFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Result is the outcome of parsing one line.
type Result struct {
	Line models.ParsedLine
	Tier Tier
}

// OK reports whether a record was produced.
func (r Result) OK() bool {
	return r.Tier != TierNone
}

// Parser handles result line parsing.
type Parser struct {
	// ranking, points, time, hit factor, stage points, stage percentage, number, name
	linePattern   *regexp.Regexp
	digitsPattern *regexp.Regexp
	pointsPattern *regexp.Regexp
	timePattern   *regexp.Regexp
	stagePattern  *regexp.Regexp
}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{
		linePattern: regexp.MustCompile(strings.ReplaceAll(
			`^\s*(\d+)\s+(\d+)\s+(\d+(?:\.\d{1,2})?)\s+(\d+\.\d{4})\s+(\d+\.\d{4})\s+(\d+(?:\.\d{1,2})?)\s+(\d+)\s+(.+?)\s*$`,
			`\s`, space,
		)),
		digitsPattern: regexp.MustCompile(`^\d+$`),
		pointsPattern: regexp.MustCompile(`^\d+(?:\.\d+)?$`),
		timePattern:   regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`),
		stagePattern:  regexp.MustCompile(`\d+`),
	}
}

// Parse converts a result line into its fields. The grammar match is tried
// first; when it fails the line is scanned for a competitor number instead.
func (p *Parser) Parse(line string) Result {
	if parsed, ok := p.matchGrammar(line); ok {
		return Result{Line: parsed, Tier: TierGrammar}
	}

	if parsed, ok := p.scanTokens(strings.Fields(line)); ok {
		return Result{Line: parsed, Tier: TierFallback}
	}

	return Result{Tier: TierNone}
}

// matchGrammar applies the full result grammar to the line.
func (p *Parser) matchGrammar(line string) (models.ParsedLine, bool) {
	m := p.linePattern.FindStringSubmatch(line)
	if m == nil {
		return models.ParsedLine{}, false
	}

	return models.ParsedLine{
		CompetitorNumber: m[7],
		CompetitorName:   strings.TrimSpace(m[8]),
		Points:           m[2],
		Time:             m[3],
		HitFactor:        m[4],
		StagePoints:      m[5],
		StagePercentage:  m[6],
	}, true
}

// scanTokens takes the last all-digit token as the competitor number and
// everything after it as the name. Points and time are only kept when the
// tokens at their usual positions look numeric.
func (p *Parser) scanTokens(tokens []string) (models.ParsedLine, bool) {
	for i := len(tokens) - 1; i >= 0; i-- {
		if !p.digitsPattern.MatchString(tokens[i]) {
			continue
		}

		return models.ParsedLine{
			CompetitorNumber: tokens[i],
			CompetitorName:   strings.TrimSpace(strings.Join(tokens[i+1:], " ")),
			Points:           tokenAt(tokens, 1, p.pointsPattern),
			Time:             tokenAt(tokens, 2, p.timePattern),
		}, true
	}

	return models.ParsedLine{}, false
}

// tokenAt returns tokens[idx] if it exists and matches pattern.
func tokenAt(tokens []string, idx int, pattern *regexp.Regexp) string {
	if idx >= len(tokens) || !pattern.MatchString(tokens[idx]) {
		return ""
	}

	return tokens[idx]
}

// NormalizeStage reduces a stage label such as "Stage 3" to its first run of digits.
func (p *Parser) NormalizeStage(label string) string {
	if match := p.stagePattern.FindString(label); match != "" {
		return match
	}

	return DefaultStage
}
