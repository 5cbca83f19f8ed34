package fsrs

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrInvalidFormat,
		ErrContractViolation,
		ErrCardIDMismatch,
	}
	for _, err := range sentinels {
		if err == nil {
			t.Error("sentinel error is nil")
		}
	}
}

func TestSentinelErrorsIsCheck(t *testing.T) {
	// Wrapping with fmt.Errorf %w preserves errors.Is chain.
	wrapped := fmt.Errorf("context: %w", ErrInvalidFormat)
	if !errors.Is(wrapped, ErrInvalidFormat) {
		t.Error("errors.Is(wrapped, ErrInvalidFormat) = false, want true")
	}
	if errors.Is(wrapped, ErrContractViolation) {
		t.Error("errors.Is(wrapped, ErrContractViolation) = true, want false")
	}
}

func TestSentinelErrorPrefix(t *testing.T) {
	tests := []struct {
		err    error
		prefix string
	}{
		{ErrInvalidFormat, "fsrs: "},
		{ErrContractViolation, "fsrs: "},
		{ErrCardIDMismatch, "fsrs: "},
	}
	for _, tt := range tests {
		msg := tt.err.Error()
		if len(msg) < len(tt.prefix) || msg[:len(tt.prefix)] != tt.prefix {
			t.Errorf("%v should start with %q, got %q", tt.err, tt.prefix, msg)
		}
	}
}
