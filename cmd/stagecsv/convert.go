package main

import (
	"fmt"
	"io"
	"os"

	"stagecsv/internal/config"
	"stagecsv/internal/export"
	"stagecsv/internal/formatter"
	"stagecsv/internal/logger"
	"stagecsv/internal/normalizer"
	"stagecsv/internal/rowio"
)

// ConvertCmd converts raw result rows into the normalized CSV.
type ConvertCmd struct {
	Input   string `short:"i" help:"Input CSV of division, stage, line rows (default: ${default_input})"`
	Output  string `short:"o" help:"Output CSV path (default: ${default_output})"`
	XLSX    string `name:"xlsx" help:"Also write the results to this XLSX workbook"`
	Preview *int   `help:"Print the first N converted rows as a table, 0 disables the preview"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(g *Globals) error {
	cfg, log, err := g.setup()
	if err != nil {
		return err
	}

	c.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := convert(cfg.Convert, log, os.Stdout); err != nil {
		log.Error("Conversion failed", "error", err)
		return err
	}

	return nil
}

// apply overrides config values with flags that were set.
func (c *ConvertCmd) apply(cfg *config.Config) {
	if c.Input != "" {
		cfg.Convert.Input = c.Input
	}

	if c.Output != "" {
		cfg.Convert.Output = c.Output
	}

	if c.XLSX != "" {
		cfg.Convert.XLSX = c.XLSX
	}

	if c.Preview != nil {
		cfg.Convert.PreviewRows = *c.Preview
	}
}

// convert reads every input row, then writes the header and the converted
// rows. Nothing is written when the input cannot be read.
func convert(cfg config.ConvertConfig, log *logger.Logger, out io.Writer) (normalizer.Stats, error) {
	log.Debug("Starting conversion", "input", cfg.Input, "output", cfg.Output)

	r, err := rowio.Open(cfg.Input)
	if err != nil {
		return normalizer.Stats{}, err
	}
	defer r.Close()

	fmt.Fprintf(out, "📂 Reading: %s\n", cfg.Input)

	rows, stats, err := normalizer.NewProcessor().Process(r.Rows())
	if err != nil {
		return stats, err
	}

	log.Debug("Rows parsed",
		"read", stats.Read,
		"skipped", stats.Skipped,
		"grammar", stats.Grammar,
		"fallback", stats.Fallback,
		"dropped", stats.Dropped,
	)

	if err := rowio.WriteFile(cfg.Output, rows); err != nil {
		return stats, err
	}

	fmt.Fprintf(out, "✅ Wrote %s rows=%d\n", cfg.Output, stats.Written)

	if cfg.XLSX != "" {
		if err := export.WriteXLSX(cfg.XLSX, rows); err != nil {
			return stats, err
		}

		fmt.Fprintf(out, "📊 Wrote %s\n", cfg.XLSX)
	}

	if stats.Dropped > 0 {
		log.Warn("Unparsable lines dropped", "count", stats.Dropped)
	}

	if cfg.PreviewRows > 0 && len(rows) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, formatter.FormatRows(rows, cfg.PreviewRows))
	}

	return stats, nil
}
