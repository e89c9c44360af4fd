// Package main provides the CLI entrypoint for uitext-generator.
//
// uitext-generator is a build-time code generator that:
//   - Reads the game's text catalog (key -> text + comment)
//   - Validates every entry and derives a constant name per key
//   - Writes a C++ header declaring one std::string_view constant per entry
//
// Run it from the repository root, or pass -catalog and -output.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	"uitext-generator/internal/app"
	"uitext-generator/internal/cli"
	"uitext-generator/internal/diagnostic"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(diagnostic.ExitCode(err))
	}
}

// run parses args and executes one generation against the OS filesystem.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)

	return app.NewApp(*cfg, osfs.Default, logger, outW).Run()
}
