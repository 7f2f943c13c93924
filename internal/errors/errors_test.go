package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError_Error(t *testing.T) {

	t.Parallel()

	err := NewParseError(3, 7, "expected %s", "';'")
	assert.Equal(t, "3:7: expected ';'", err.Error())

	err = NewParseError(0, 0, "empty input")
	assert.Equal(t, "empty input", err.Error())
}

func TestIOError_Unwrap(t *testing.T) {

	t.Parallel()

	err := NewIOError("missing.sy", fs.ErrNotExist)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.sy")
}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	assert.True(t, IsUserError(NewParseError(1, 1, "x")))
	assert.True(t, IsUserError(NewIOError("a", fs.ErrPermission)))
	assert.True(t, IsUserError(fmt.Errorf("wrapped: %w", NewParseError(1, 1, "x"))))
	assert.False(t, IsUserError(NewMalformedNodeError("AddExp", "missing operand")))
	assert.False(t, IsUserError(fmt.Errorf("plain")))
}

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	assert.True(t, IsInternalError(NewMalformedNodeError("AddExp", "missing operand")))
	assert.True(t, IsInternalError(fmt.Errorf("wrapped: %w", NewMalformedNodeError("If", "nil"))))
	assert.False(t, IsInternalError(NewParseError(1, 1, "x")))
}

func TestExitCode(t *testing.T) {

	t.Parallel()

	require.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitIO, ExitCode(NewIOError("a", fs.ErrNotExist)))
	assert.Equal(t, ExitParse, ExitCode(NewParseError(1, 2, "bad")))
	assert.Equal(t, ExitMalformed, ExitCode(fmt.Errorf("serialize: %w", NewMalformedNodeError("Number", "nil"))))
	assert.Equal(t, ExitUnknown, ExitCode(fmt.Errorf("other")))
}

func TestMalformedNodeError_Error(t *testing.T) {

	t.Parallel()

	err := NewMalformedNodeError("MulExp", "operator %q does not belong to this level", "+")
	assert.Equal(t, `malformed MulExp node: operator "+" does not belong to this level`, err.Error())
}

func TestConfigError(t *testing.T) {

	t.Parallel()

	err := NewConfigError("sysy.toml", fmt.Errorf("unknown format %q", "xml"))
	assert.Equal(t, `invalid configuration sysy.toml: unknown format "xml"`, err.Error())
	assert.True(t, IsUserError(err))
	assert.Equal(t, ExitUsage, ExitCode(err))

	err = NewConfigError("", fmt.Errorf("width must be positive"))
	assert.Equal(t, "invalid configuration: width must be positive", err.Error())
}
