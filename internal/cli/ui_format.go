// Duration formatting utilities for CLI output.

package cli

import (
	"time"

	"github.com/agbru/polymul/internal/format"
)

// FormatExecutionDuration delegates to format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}
