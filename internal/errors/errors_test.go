package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	base := NoDataFile("nothing to read")
	wrapped := Wrap(base, "load failed")

	assert.Equal(t, CodeNoDataFile, GetCode(wrapped))
	assert.Equal(t, "load failed: nothing to read", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("boom"), "reading %s", "a.csv")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.Equal(t, "reading a.csv: boom", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithCode(CodeNotFound, nil))
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", IndexOutOfRange(7, 6))

	assert.True(t, HasCode(err, CodeIndexOutOfRange))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}
