package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: ExitErrorTimeout},
		{name: "canceled", err: context.Canceled, want: ExitErrorCanceled},
		{name: "wrapped deadline", err: fmt.Errorf("multiply: %w", context.DeadlineExceeded), want: ExitErrorTimeout},
		{name: "wrapped cancel", err: WrapError(context.Canceled, "during transform"), want: ExitErrorCanceled},
		{name: "generic", err: errors.New("boom"), want: ExitErrorGeneric},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeForError(tc.err); got != tc.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) != nil")
	}

	base := errors.New("base failure")
	wrapped := WrapError(base, "stage %d", 2)
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
	if got, want := wrapped.Error(), "stage 2: base failure"; got != want {
		t.Errorf("wrapped.Error() = %q, want %q", got, want)
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()

	if !IsContextError(context.Canceled) || !IsContextError(context.DeadlineExceeded) {
		t.Error("IsContextError() = false for context errors")
	}
	if IsContextError(errors.New("other")) || IsContextError(nil) {
		t.Error("IsContextError() = true for non-context error")
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cfgErr := NewConfigError("bad value: %d", 7)
	if got, want := cfgErr.Error(), "bad value: 7"; got != want {
		t.Errorf("ConfigError.Error() = %q, want %q", got, want)
	}

	vErr := ValidationError{Field: "a", Message: "must not be empty"}
	if got := vErr.Error(); !strings.Contains(got, `"a"`) || !strings.Contains(got, "must not be empty") {
		t.Errorf("ValidationError.Error() = %q, missing field or message", got)
	}

	cause := errors.New("listen failed")
	srvErr := NewServerError("startup", cause)
	if !errors.Is(srvErr, cause) {
		t.Error("ServerError lost its cause")
	}
	if got, want := srvErr.Error(), "startup: listen failed"; got != want {
		t.Errorf("ServerError.Error() = %q, want %q", got, want)
	}
	if got, want := (ServerError{Message: "shutdown"}).Error(), "shutdown"; got != want {
		t.Errorf("ServerError.Error() without cause = %q, want %q", got, want)
	}

	tErr := TimeoutError{Operation: "multiply", Limit: 2 * time.Second}
	if got := tErr.Error(); !strings.Contains(got, "multiply") || !strings.Contains(got, "2s") {
		t.Errorf("TimeoutError.Error() = %q, missing operation or limit", got)
	}

	mErr := MultiplicationError{Cause: cause}
	if !errors.Is(mErr, cause) {
		t.Error("MultiplicationError lost its cause")
	}
}
