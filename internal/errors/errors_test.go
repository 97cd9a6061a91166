package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("bad value %d for %s", 42, "n")
	want := "bad value 42 for n"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var confErr ConfigError
	if !errors.As(err, &confErr) {
		t.Errorf("NewConfigError result is %T, want ConfigError", err)
	}
}

func TestEvaluationError_Unwrap(t *testing.T) {
	cause := errors.New("arithmetic overflow")
	err := EvaluationError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}

func TestValidationError_Message(t *testing.T) {
	err := ValidationError{Field: "n", Message: "out of range"}
	got := err.Error()
	if !strings.Contains(got, `"n"`) || !strings.Contains(got, "out of range") {
		t.Errorf("Error() = %q, want the field and message included", got)
	}
}

func TestWrapError(t *testing.T) {
	if got := WrapError(nil, "context"); got != nil {
		t.Errorf("WrapError(nil) = %v, want nil", got)
	}

	cause := errors.New("disk full")
	wrapped := WrapError(cause, "saving result for n=%d", 30)
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error does not unwrap to the cause")
	}
	want := "saving result for n=30: disk full"
	if wrapped.Error() != want {
		t.Errorf("wrapped.Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestIsContextError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
