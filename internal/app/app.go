package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"uitext-generator/internal/catalog"
	"uitext-generator/internal/config"
	"uitext-generator/internal/gen"
)

// App wires the pipeline to a filesystem, a logger and an output stream.
type App struct {
	cfg    config.Config
	fs     billy.Filesystem
	logger *slog.Logger
	outW   io.Writer
}

// NewApp creates an App. Catalog and header paths in cfg are resolved
// against fs; outW receives the success message or, on a dry run, the header.
func NewApp(cfg config.Config, fs billy.Filesystem, logger *slog.Logger, outW io.Writer) *App {
	return &App{
		cfg:    cfg,
		fs:     fs,
		logger: logger,
		outW:   outW,
	}
}

// Run executes the pipeline. Nothing is written unless the catalog loads,
// every identifier is usable and every entry validates.
func (a *App) Run() error {
	a.logger.Debug("Loading catalog.", "path", a.cfg.CatalogPath, "format", catalog.FormatFor(a.cfg.CatalogPath).String())

	cat, err := catalog.LoadFile(a.fs, a.cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	a.logger.Debug("Catalog loaded.", "entries", cat.Len())

	content, err := gen.NewGenerator(a.generatorConfig()).Render(cat)
	if err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	a.logger.Debug("Header rendered.", "bytes", len(content))

	if a.cfg.DryRun {
		if _, err := a.outW.Write(content); err != nil {
			return fmt.Errorf("printing header: %w", err)
		}

		return nil
	}

	if err := gen.NewWriter(a.fs).WriteFile(a.cfg.OutputPath, content); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	a.logger.Info("Header generated.", "path", a.cfg.OutputPath, "entries", cat.Len())
	fmt.Fprintf(a.outW, "Header file '%s' generated successfully.\n", filepath.Base(a.cfg.OutputPath))

	return nil
}

func (a *App) generatorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		Filename:   filepath.Base(a.cfg.OutputPath),
		Includes:   a.cfg.Includes,
		Namespaces: a.cfg.Namespaces,
		Naming:     a.cfg.Naming(),
	}
}
