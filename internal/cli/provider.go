// This file provides a color provider implementation for use with the errors
// package.
package cli

import (
	apperrors "github.com/agbru/omnicalc/internal/errors"
	"github.com/agbru/omnicalc/internal/ui"
)

// Ensure CLIColorProvider implements apperrors.ColorProvider at compile time.
var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider implements apperrors.ColorProvider using the current UI
// theme. It provides terminal color codes for formatted error messages.
type CLIColorProvider struct{}

// Red returns the error color code from the current theme.
func (c CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color code from the current theme.
func (c CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset color code from the current theme.
func (c CLIColorProvider) Reset() string { return ui.ColorReset() }
