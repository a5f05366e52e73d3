package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeColors struct{}

func (fakeColors) Yellow() string { return "<y>" }
func (fakeColors) Reset() string  { return "<r>" }

func TestHandleMultiplicationError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		duration time.Duration
		wantCode int
		wantText string
	}{
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitSuccess,
			wantText: "",
		},
		{
			name:     "timeout",
			err:      context.DeadlineExceeded,
			duration: 3 * time.Second,
			wantCode: ExitErrorTimeout,
			wantText: "Failure (Timeout)",
		},
		{
			name:     "wrapped timeout",
			err:      fmt.Errorf("fft: %w", context.DeadlineExceeded),
			wantCode: ExitErrorTimeout,
			wantText: "Failure (Timeout)",
		},
		{
			name:     "canceled",
			err:      context.Canceled,
			wantCode: ExitErrorCanceled,
			wantText: "Status: Canceled",
		},
		{
			name:     "generic",
			err:      errors.New("disk full"),
			wantCode: ExitErrorGeneric,
			wantText: "disk full",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			got := HandleMultiplicationError(tc.err, tc.duration, &buf, nil)
			if got != tc.wantCode {
				t.Errorf("exit code = %d, want %d", got, tc.wantCode)
			}
			if tc.wantText == "" {
				if buf.Len() != 0 {
					t.Errorf("output = %q, want empty", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tc.wantText) {
				t.Errorf("output = %q, want substring %q", buf.String(), tc.wantText)
			}
		})
	}
}

func TestHandleMultiplicationErrorDuration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	HandleMultiplicationError(context.DeadlineExceeded, 1500*time.Millisecond, &buf, fakeColors{})

	out := buf.String()
	if !strings.Contains(out, "after <y>1.5s<r>") {
		t.Errorf("output = %q, want colored duration suffix", out)
	}
}

func TestHandleMultiplicationErrorNoDuration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	HandleMultiplicationError(context.DeadlineExceeded, 0, &buf, nil)
	if strings.Contains(buf.String(), "after") {
		t.Errorf("output = %q, want no duration suffix for zero duration", buf.String())
	}
}
