package apperror

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "ac", Value: "-3", Reason: "must not be negative"}
	assert.Equal(t, "invalid ac '-3': must not be negative", err.Error())
}

func TestRowError(t *testing.T) {
	plain := &RowError{Line: 4, Reason: "expected 6 columns, got 3"}
	assert.Equal(t, "row 4 skipped: expected 6 columns, got 3", plain.Error())

	cause := errors.New("bad number")
	wrapped := &RowError{Line: 2, Reason: "unparseable field", Err: cause}
	assert.Contains(t, wrapped.Error(), "bad number")
	assert.ErrorIs(t, wrapped, cause)
}

func TestPersistenceError(t *testing.T) {
	err := &PersistenceError{Path: "/tmp/h.csv", Op: "append", Err: fs.ErrPermission}
	assert.Equal(t, "append /tmp/h.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	var target *PersistenceError
	wrapped := errors.Join(errors.New("context"), err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "append", target.Op)
}
