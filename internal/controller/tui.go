package controller

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/ology/basswalk/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	reroll RerollFunc
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, reroll RerollFunc) *TUI {
	return &TUI{output: output, reroll: reroll}
}

// DisplayProgression shows the bars interactively; r rerolls the
// selected bar.
func (t *TUI) DisplayProgression(bars []m.Bar) error {
	items := make([]list.Item, 0, len(bars))
	for i, bar := range bars {
		items = append(items, barItem{index: i, bar: bar})
	}

	model := newWalkModel(items, t.reroll)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
