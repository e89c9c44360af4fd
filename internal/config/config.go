// Package config holds the generator's run configuration: where the catalog
// and the header live, how names and namespaces look, and how to log.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"uitext-generator/internal/naming"
)

// Environment variables read by ApplyEnv.
const (
	EnvPrefix          = "UITEXT_"
	EnvCatalog         = EnvPrefix + "CATALOG"
	EnvOutput          = EnvPrefix + "OUTPUT"
	EnvMarker          = EnvPrefix + "MARKER"
	EnvCapitalizeFirst = EnvPrefix + "CAPITALIZE_FIRST"
	EnvNamespaces      = EnvPrefix + "NAMESPACES"
	EnvIncludes        = EnvPrefix + "INCLUDES"
	EnvLogLevel        = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat       = EnvPrefix + "LOG_FORMAT"
)

// Defaults mirror the layout of the game's source tree.
const (
	DefaultCatalogPath = "resources/game-text.json"
	DefaultOutputPath  = "Source/console-checkers/Source/UITextStrings.h"
	DefaultEnvFile     = ".env"
)

// Config is the configuration of one run.
type Config struct {
	CatalogPath     string
	OutputPath      string
	Namespaces      []string
	Includes        []string
	Marker          string
	CapitalizeFirst bool
	// DryRun prints the header instead of writing it.
	DryRun    bool
	LogLevel  string
	LogFormat string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		CatalogPath:     DefaultCatalogPath,
		OutputPath:      DefaultOutputPath,
		Namespaces:      []string{"Checkers", "UIText"},
		Includes:        []string{"<string_view>"},
		Marker:          naming.DefaultMarker,
		CapitalizeFirst: true,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Environment returns the variables of envFile overlaid with the UITEXT_*
// variables of the process environment. A missing envFile is not an error.
func Environment(envFile string) (map[string]string, error) {
	env := map[string]string{}

	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)

		switch {
		case err == nil:
			maps.Copy(env, fileEnv)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("config: reading %s: %w", envFile, err)
		}
	}

	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}

	return env, nil
}

// ApplyEnv overrides fields with the values present in env.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvCatalog]; ok {
		c.CatalogPath = v
	}

	if v, ok := env[EnvOutput]; ok {
		c.OutputPath = v
	}

	if v, ok := env[EnvMarker]; ok {
		c.Marker = v
	}

	if v, ok := env[EnvCapitalizeFirst]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not a boolean", EnvCapitalizeFirst, v)
		}

		c.CapitalizeFirst = b
	}

	if v, ok := env[EnvNamespaces]; ok {
		c.Namespaces = SplitList(v)
	}

	if v, ok := env[EnvIncludes]; ok {
		c.Includes = SplitList(v)
	}

	if v, ok := env[EnvLogLevel]; ok {
		c.LogLevel = strings.ToLower(v)
	}

	if v, ok := env[EnvLogFormat]; ok {
		c.LogFormat = strings.ToLower(v)
	}

	return nil
}

// Validate checks the configuration before any file is touched.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return errors.New("config: catalog path is required")
	}

	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("config: output path is required")
	}

	if c.Marker != "" && !naming.Valid(c.Marker) {
		return fmt.Errorf("config: marker %q is not a valid identifier prefix", c.Marker)
	}

	for _, ns := range c.Namespaces {
		if !naming.Valid(ns) {
			return fmt.Errorf("config: namespace %q is not a valid identifier", ns)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}

	return nil
}

// Naming returns the identifier options.
func (c *Config) Naming() naming.Options {
	return naming.Options{Marker: c.Marker, CapitalizeFirst: c.CapitalizeFirst}
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
