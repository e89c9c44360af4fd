package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitext-generator/internal/cli"
	"uitext-generator/internal/diagnostic"
)

// fixture writes catalogJSON to a temp dir and returns the args pointing at
// it, plus the output path.
func fixture(t *testing.T, catalogJSON string) ([]string, string) {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "game-text.json")
	outputPath := filepath.Join(dir, "UITextStrings.h")

	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogJSON), 0o600))

	return []string{
		"-catalog", catalogPath,
		"-output", outputPath,
		"-env-file", filepath.Join(dir, "none.env"),
	}, outputPath
}

func TestRun_Success(t *testing.T) {
	args, outputPath := fixture(t, `{"GREETING": {"text": "Hello", "comment": "Greeting shown on launch"}}`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(out, errOut, args))
	assert.Equal(t, "Header file 'UITextStrings.h' generated successfully.\n", out.String())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "static constexpr std::string_view sGreeting = \"Hello\";")
}

func TestRun_SchemaErrorExitCode(t *testing.T) {
	args, outputPath := fixture(t, `{"GREETING": {"text": "Hello"}}`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)
	require.Error(t, err)
	assert.Equal(t, diagnostic.ExitSchema, diagnostic.ExitCode(err))
	assert.Contains(t, err.Error(), `entry "GREETING", field "comment"`)

	_, statErr := os.Stat(outputPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_ParseErrorExitCode(t *testing.T) {
	args, _ := fixture(t, `{"GREETING": `)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, args)
	require.Error(t, err)
	assert.Equal(t, diagnostic.ExitParse, diagnostic.ExitCode(err))
}

func TestRun_ShouldExit(t *testing.T) {
	errOut := &bytes.Buffer{}

	require.NoError(t, run(&bytes.Buffer{}, errOut, []string{"-h"}))
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, diagnostic.ExitUsage, exitErr.Code)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
