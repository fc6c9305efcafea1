package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScanCommand(t *testing.T, format string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewScanCommand(rootOpts)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanCommand_RewritesDocument(t *testing.T) {
	path := writeDocument(t, "Built in MCMXC, restored in 2015.")

	stdout, stderr, err := runScanCommand(t, "text", path)
	require.NoError(t, err)
	assert.Equal(t, "Built in 1990, restored in MMXV.", stdout)
	assert.Contains(t, stderr, "2 substitution(s)")
}

func TestScanCommand_FailuresReportedOnStderr(t *testing.T) {
	path := writeDocument(t, "MMMM stands.")

	stdout, stderr, err := runScanCommand(t, "text", path)
	require.NoError(t, err)
	assert.Equal(t, "MMMM stands.", stdout)
	assert.Contains(t, stderr, "MMMM")
	assert.Contains(t, stderr, "1 failure(s)")
}

func TestScanCommand_OutputFile(t *testing.T) {
	path := writeDocument(t, "Year XII.")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := runScanCommand(t, "text", path, "--output", outPath)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Year 12.")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Year 12.", string(data))
}

func TestScanCommand_HistoricalFlag(t *testing.T) {
	path := writeDocument(t, "Clock shows IIII.")

	stdout, _, err := runScanCommand(t, "text", path, "--historical")
	require.NoError(t, err)
	assert.Equal(t, "Clock shows 4.", stdout)
}

func TestScanCommand_ModeFlags(t *testing.T) {
	path := writeDocument(t, "Year MCMXC, page 12.")

	stdout, _, err := runScanCommand(t, "text", path, "--numerals-only")
	require.NoError(t, err)
	assert.Equal(t, "Year 1990, page 12.", stdout)

	stdout, _, err = runScanCommand(t, "text", path, "--integers-only")
	require.NoError(t, err)
	assert.Equal(t, "Year MCMXC, page XII.", stdout)

	_, _, err = runScanCommand(t, "text", path, "--numerals-only", "--integers-only")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScanCommand_MissingFile(t *testing.T) {
	_, _, err := runScanCommand(t, "text", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScanCommand_JSON(t *testing.T) {
	path := writeDocument(t, "Year MCMXC.")

	stdout, _, err := runScanCommand(t, "json", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Year 1990.", data["text"])

	summary, ok := data["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["replacements"])
}
