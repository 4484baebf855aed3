// Command stagecsv converts stage result reports into normalized CSV.
//
// Without a subcommand it runs convert with the default paths:
//
//	stagecsv                      # out/extracted_rows.csv -> out/extracted_rows_converted.csv
//	stagecsv extract -i report.txt
//	stagecsv convert --xlsx out/results.xlsx --preview 10
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"stagecsv/internal/config"
	"stagecsv/internal/logger"
	"stagecsv/internal/rowio"
)

// Exit statuses.
const (
	exitOK           = 0
	exitFailure      = 1
	exitMissingInput = 2
)

// Globals holds flags shared by every command.
type Globals struct {
	Config   string `help:"Path to YAML configuration file (default: ${default_config} when present)" type:"path"`
	LogLevel string `name:"log-level" help:"Log level: debug, info, warn or error"`
}

// setup loads the configuration and builds the run logger.
func (g *Globals) setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}

	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}

	log := logger.NewLogger(cfg.Logging.Level).WithRunID()
	log.Debug("Configuration loaded", "config", cfg.String())

	return cfg, log, nil
}

// CLI defines the command-line interface for stagecsv.
var CLI struct {
	Globals

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert division, stage, line rows into normalized result CSV"`
	Extract ExtractCmd `cmd:"" help:"Extract division, stage, line rows from report text"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("stagecsv"),
		kong.Description("Stage result report to CSV converter"),
		kong.UsageOnError(),
		kong.Vars{
			"default_config": config.DefaultConfigPath,
			"default_lines":  config.DefaultLinesPath,
			"default_input":  config.DefaultRowsPath,
			"default_output": config.DefaultOutputPath,
		},
	)

	err := ctx.Run(&CLI.Globals)
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on w and maps it to a process exit status.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, rowio.ErrMissingInput):
		fmt.Fprintf(w, "❌ %v\n", err)
		return exitMissingInput
	default:
		fmt.Fprintf(w, "❌ %v\n", err)
		return exitFailure
	}
}
