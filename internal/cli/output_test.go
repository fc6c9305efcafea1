package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	base := errors.New("boom")
	err := WrapExitError(ExitCommandError, "doing thing", base)

	assert.Equal(t, "doing thing: boom", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode_PlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestGetExitCode_WrappedExitError(t *testing.T) {
	inner := NewExitError(ExitCommandError, "inner")
	wrapped := WrapExitError(ExitFailure, "outer", inner)
	// errors.As finds the outermost ExitError.
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestFormatterSuccess_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Success("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestFormatterSuccess_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Success(map[string]string{"k": "v"}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestFormatterError_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Error(ErrCodeInvalidNumeral, "bad numeral", nil))
	assert.Equal(t, "Error [INVALID_NUMERAL]: bad numeral\n", buf.String())
}

func TestFormatterError_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error(ErrCodeOutOfRange, "too big", map[string]int{"value": 4000}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeOutOfRange, resp.Error.Code)
}

func TestVerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	quiet := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut}
	quiet.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	verbose := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut, Verbose: true}
	verbose.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", errOut.String())
	assert.Empty(t, out.String(), "verbose logs must not corrupt stdout")
}
