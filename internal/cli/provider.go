package cli

import (
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/ui"
)

// Ensure CLIColorProvider implements apperrors.ColorProvider at compile time.
var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider implements apperrors.ColorProvider using CLI theme
// functions. It provides terminal color codes for formatted error messages
// based on the current theme settings.
type CLIColorProvider struct{}

// Yellow returns the yellow color code from the current CLI theme.
func (c CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset color code from the current CLI theme.
func (c CLIColorProvider) Reset() string { return ui.ColorReset() }
