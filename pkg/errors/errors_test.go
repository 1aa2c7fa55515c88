// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "format_error",
			code:    errors.ErrFormat,
			message: "bad header",
			wantStr: "[FORMAT] bad header",
		},
		{
			name:    "index_error",
			code:    errors.ErrIndexOutOfRange,
			message: "no command at index 3",
			wantStr: "[INDEX_OUT_OF_RANGE] no command at index 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "template `%s` already exists", "go-cli")
	assert.Equal(t, "template `go-cli` already exists", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIO, "cannot write file")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrIO, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[IO] cannot write file: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrIO, "cannot write file"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrIO, "cannot write %s", "file"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrNonZeroExit, "command failed").
		WithDetail("command", "make").
		WithDetails(map[string]interface{}{"exit_code": 2})

	assert.Equal(t, "make", err.Details["command"])
	assert.Equal(t, 2, err.Details["exit_code"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrFormat, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrFormat, "x"), errors.ErrFormat, true},
		{"different_code", errors.New(errors.ErrFormat, "x"), errors.ErrIO, false},
		{"wrapped_with_fmt", fmt.Errorf("outer: %w", errors.New(errors.ErrIO, "x")), errors.ErrIO, true},
		{"non_lppm_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing").WithDetail("path", "/tmp/x")

	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, "/tmp/x", errors.GetErrorDetails(err)["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
