package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindForbidden, KindOf(New(KindForbidden, "nope")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("outer: %w", New(KindNotFound, "gone"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Job not found.", Message(New(KindNotFound, "Job not found.")))

	// Internal causes never leak; the caller sees the generic message or the
	// one the wrapper chose.
	wrapped := Wrap(errors.New("dial tcp: connection refused"), KindInternal, "Internal Server Error")
	assert.Equal(t, "Internal Server Error", Message(wrapped))
	assert.NotContains(t, Message(wrapped), "dial tcp")

	assert.Equal(t, "Internal Server Error", Message(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, KindInternal, "Internal Server Error")
	assert.ErrorIs(t, err, cause)
}
