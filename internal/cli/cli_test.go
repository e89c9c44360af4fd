package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitext-generator/internal/config"
	"uitext-generator/internal/diagnostic"
)

// noEnvFile points -env-file at a file that does not exist.
func noEnvFile(t *testing.T) []string {
	t.Helper()
	return []string{"-env-file", filepath.Join(t.TempDir(), "none.env")}
}

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(noEnvFile(t), out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	expected := config.Default()
	assert.Equal(t, &expected, cfg)
}

func TestParse_Flags(t *testing.T) {
	args := append(noEnvFile(t),
		"-catalog", "text.hcl",
		"-output", "out/Strings.h",
		"-marker", "s_",
		"-capitalize-first=false",
		"-namespaces", "Game",
		"-includes", "<string_view>,<cstdint>",
		"-dry-run",
		"-log-level", "DEBUG",
		"-log-format", "json",
	)

	cfg, _, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "text.hcl", cfg.CatalogPath)
	assert.Equal(t, "out/Strings.h", cfg.OutputPath)
	assert.Equal(t, "s_", cfg.Marker)
	assert.False(t, cfg.CapitalizeFirst)
	assert.Equal(t, []string{"Game"}, cfg.Namespaces)
	assert.Equal(t, []string{"<string_view>", "<cstdint>"}, cfg.Includes)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_Precedence(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "gen.env")
	require.NoError(t, os.WriteFile(envFile, []byte("UITEXT_CATALOG=file.json\nUITEXT_OUTPUT=file.h\nUITEXT_MARKER=f\n"), 0o600))

	t.Setenv(config.EnvOutput, "env.h")
	t.Setenv(config.EnvMarker, "e")

	cfg, _, err := Parse([]string{"-env-file", envFile, "-marker", "k"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "file.json", cfg.CatalogPath, "env file beats default")
	assert.Equal(t, "env.h", cfg.OutputPath, "process env beats env file")
	assert.Equal(t, "k", cfg.Marker, "flag beats env")
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-catalog")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, errMsg: "flag provided but not defined: -nope"},
		{name: "positional argument", args: []string{"game-text.json"}, errMsg: `unexpected argument "game-text.json"`},
		{name: "bad log level", args: []string{"-log-level", "loud"}, errMsg: "invalid log level"},
		{name: "bad namespace", args: []string{"-namespaces", "UI Text"}, errMsg: "namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(noEnvFile(t), tt.args...)

			_, _, err := Parse(args, &bytes.Buffer{})
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, diagnostic.ExitUsage, exitErr.Code)
			assert.Contains(t, exitErr.Error(), tt.errMsg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	out := &bytes.Buffer{}

	logger := NewLogger("warn", "json", out)
	logger.Info("hidden")
	logger.Warn("shown", "key", "GREETING")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), `"msg":"shown"`)
	assert.Contains(t, out.String(), `"key":"GREETING"`)

	out.Reset()
	NewLogger("debug", "text", out).Debug("details")
	assert.Contains(t, out.String(), "msg=details")

	out.Reset()
	logger = NewLogger("ERROR", "text", out)
	logger.Warn("hidden")
	logger.Error("failed")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "msg=failed")

	out.Reset()
	logger = NewLogger("verbose", "text", out)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "msg=shown")
}
