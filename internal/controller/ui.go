// Package controller provides output surfaces for generated basslines.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/ology/basswalk/internal/model"
)

// RerollFunc regenerates a single bar of the progression.
type RerollFunc func(index int) (m.Bar, error)

// UI displays a generated progression. Implementations are either plain
// text or an interactive TUI.
type UI interface {
	DisplayProgression(bars []m.Bar) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY
// is true it returns the interactive Bubble Tea UI; otherwise plain
// tablewriter output.
func NewUI(cmd *cobra.Command, useTTY bool, reroll RerollFunc) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), reroll)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY). Returns false
// when output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
