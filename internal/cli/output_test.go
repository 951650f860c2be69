// SPDX-License-Identifier: MIT
// Package: chromatic/internal/cli

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Success(map[string]int{"rank": 2}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf, Verbose: true}

	require.NoError(t, formatter.Error(ErrCodeCompute, "rank failed", "at {1,2}"))
	assert.Equal(t, "Error [E002]: rank failed\nDetails: at {1,2}\n", buf.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}
	cause := errors.New("boom")

	err := formatter.Fail(ErrCodeCompute, "computation failed", cause)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.ErrorIs(t, err, cause)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E002", resp.Error.Code)
	assert.Equal(t, "boom", resp.Error.Details)

	err = formatter.Fail(ErrCodeInput, "bad input", cause)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: out, ErrWriter: diag}
	formatter.VerboseLog("hidden")
	assert.Empty(t, diag.String())

	formatter.Verbose = true
	formatter.VerboseLog("d=%d done", 3)
	assert.Equal(t, "d=3 done\n", diag.String())
	assert.Empty(t, out.String())
}

func TestExitError(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	err := NewExitError(ExitCommandError, "bad flag")
	assert.Equal(t, "bad flag", err.Error())
	wrapped := WrapExitError(ExitFailure, "failed", errors.New("cause"))
	assert.Equal(t, "failed: cause", wrapped.Error())
}
