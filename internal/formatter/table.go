// Package formatter renders converted rows as aligned Markdown tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"stagecsv/internal/models"
)

// minColWidth keeps separator cells valid Markdown ("---").
const minColWidth = 3

// FormatTable renders header and rows as a Markdown table. Columns are
// padded by display width so wide (CJK) characters line up in a terminal.
// Short rows are padded with empty cells.
func FormatTable(header []string, rows [][]string) string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	// 1. Calculate max widths (using display width)
	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColWidth
	}

	measure := func(row []string) {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	measure(header)

	for _, row := range rows {
		measure(row)
	}

	// 2. Reconstruct lines
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, formatRow(header, colWidths, false))
	lines = append(lines, formatRow(nil, colWidths, true))

	for _, row := range rows {
		lines = append(lines, formatRow(row, colWidths, false))
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatRows renders at most limit output rows under the fixed header.
// A non-positive limit renders every row.
func FormatRows(rows []models.OutputRow, limit int) string {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}

	return FormatTable(models.Header, records)
}

func formatRow(row []string, colWidths []int, separator bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if separator {
			sb.WriteString(strings.Repeat("-", width))
		} else {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			// Pad with spaces based on display width
			if padding := width - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
