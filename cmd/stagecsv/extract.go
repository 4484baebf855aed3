package main

import (
	"fmt"
	"io"
	"os"

	"stagecsv/internal/config"
	"stagecsv/internal/extractor"
	"stagecsv/internal/logger"
	"stagecsv/internal/rowio"
)

// ExtractCmd turns report text into the rows convert reads.
type ExtractCmd struct {
	Input  string `short:"i" help:"Report text, one line per report line (default: ${default_lines})"`
	Output string `short:"o" help:"Output CSV of division, stage, line rows (default: ${default_input})"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(g *Globals) error {
	cfg, log, err := g.setup()
	if err != nil {
		return err
	}

	if c.Input != "" {
		cfg.Extract.Input = c.Input
	}

	if c.Output != "" {
		cfg.Extract.Output = c.Output
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := extract(cfg.Extract, log, os.Stdout); err != nil {
		log.Error("Extraction failed", "error", err)
		return err
	}

	return nil
}

func extract(cfg config.ExtractConfig, log *logger.Logger, out io.Writer) (extractor.Stats, error) {
	fd, err := rowio.OpenInput(cfg.Input)
	if err != nil {
		return extractor.Stats{}, err
	}
	defer fd.Close()

	fmt.Fprintf(out, "📂 Reading: %s\n", cfg.Input)

	rows, stats, err := extractor.NewExtractor().Extract(fd)
	if err != nil {
		return stats, err
	}

	log.Debug("Report lines classified",
		"lines", stats.Lines,
		"divisions", stats.Divisions,
		"stages", stats.Stages,
		"skipped", stats.Skipped,
	)

	if err := rowio.WriteRawFile(cfg.Output, rows); err != nil {
		return stats, err
	}

	fmt.Fprintf(out, "✅ Wrote %s rows=%d\n", cfg.Output, stats.Rows)

	return stats, nil
}
