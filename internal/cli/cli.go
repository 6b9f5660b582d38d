// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/tsconv/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tsconv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
tsconv - Converts tool switching instances into one canonical text format.

Usage:
  tsconv [options] [INPUT_DIR]

Arguments:
  INPUT_DIR
    Directory (or afs URL) holding the instance files. Defaults to %s.

Options:
`, app.DefaultInputDir)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	cFlag := flagSet.String("c", "", "Path to an HCL configuration file (shorthand).")
	inputFlag := flagSet.String("input", "", "Input directory or URL. Overrides INPUT_DIR.")
	outputFlag := flagSet.String("output", "", fmt.Sprintf("Output directory or URL (default %q).", app.DefaultOutputDir))
	extensionFlag := flagSet.String("extension", "", fmt.Sprintf("Input file extension (default %q).", app.DefaultExtension))
	workersFlag := flagSet.Int("workers", 0, fmt.Sprintf("Number of files converted concurrently (default %d).", app.DefaultWorkers))
	summaryFlag := flagSet.String("summary", "", "Write a YAML summary of the batch to this path.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one INPUT_DIR, got %d", flagSet.NArg())}
	}

	input := *inputFlag
	if input == "" && flagSet.NArg() == 1 {
		input = flagSet.Arg(0)
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:      configPath,
		InputDir:        input,
		OutputDir:       *outputFlag,
		Extension:       *extensionFlag,
		Workers:         *workersFlag,
		Summary:         *summaryFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
