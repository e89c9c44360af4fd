package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"uitext-generator/internal/config"
	"uitext-generator/internal/diagnostic"
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

func usageError(err error) *ExitError {
	return &ExitError{Code: diagnostic.ExitUsage, Message: err.Error()}
}

// Parse processes command-line arguments. It returns the populated config,
// a boolean indicating if the program should exit cleanly (help was
// requested), or an ExitError.
//
// Values are resolved flag first, then environment (including the env file),
// then defaults.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")

	cfg := config.Default()

	flagSet := flag.NewFlagSet("uitext-generator", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
uitext-generator - generates the UI text header from the text catalog.

Usage:
  uitext-generator [options]

Every option can also be set through the UITEXT_* environment variable of
the same name (e.g. UITEXT_CATALOG), or in the env file.

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalog", cfg.CatalogPath, "Path to the text catalog (.json, .yaml, .toml or .hcl).")
	outputFlag := flagSet.String("output", cfg.OutputPath, "Path of the header to generate.")
	markerFlag := flagSet.String("marker", cfg.Marker, "Prefix of every generated constant name.")
	capitalizeFlag := flagSet.Bool("capitalize-first", cfg.CapitalizeFirst, "Capitalize the first word of constant names.")
	namespacesFlag := flagSet.String("namespaces", strings.Join(cfg.Namespaces, ","), "Comma separated namespaces, outermost first.")
	includesFlag := flagSet.String("includes", strings.Join(cfg.Includes, ","), "Comma separated #include targets.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the header to stdout instead of writing it.")
	logLevelFlag := flagSet.String("log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	envFileFlag := flagSet.String("env-file", config.DefaultEnvFile, "Optional file of UITEXT_* variables.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, usageError(err)
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{
			Code:    diagnostic.ExitUsage,
			Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0)),
		}
	}

	slog.Debug("Arguments parsed successfully.")

	env, err := config.Environment(*envFileFlag)
	if err != nil {
		return nil, false, usageError(err)
	}

	if err := cfg.ApplyEnv(env); err != nil {
		return nil, false, usageError(err)
	}

	// Only flags given explicitly override the environment.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "catalog":
			cfg.CatalogPath = *catalogFlag
		case "output":
			cfg.OutputPath = *outputFlag
		case "marker":
			cfg.Marker = *markerFlag
		case "capitalize-first":
			cfg.CapitalizeFirst = *capitalizeFlag
		case "namespaces":
			cfg.Namespaces = config.SplitList(*namespacesFlag)
		case "includes":
			cfg.Includes = config.SplitList(*includesFlag)
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		}
	})

	cfg.DryRun = *dryRunFlag

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)

	return &cfg, false, nil
}
