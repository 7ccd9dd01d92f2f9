package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// barDelegate renders one bar per line.
type barDelegate struct{}

func (d barDelegate) Height() int  { return 1 }
func (d barDelegate) Spacing() int { return 0 }
func (d barDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d barDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	bar, ok := item.(barItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var chordStyle, noteStyle lipgloss.Style

	if isSelected {
		chordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(8)
		noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	} else {
		chordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(8)
		noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	line := fmt.Sprintf("%s  %s",
		chordStyle.Render(bar.bar.Chord),
		noteStyle.Render(fmt.Sprintf("%-20s %s", formatMIDI(bar.bar.Notes), formatNames(bar.bar.Notes))),
	)
	_, _ = fmt.Fprint(w, line)
}

// walkModel steps through the bars of a generated progression.
type walkModel struct {
	width   int
	height  int
	barList list.Model
	reroll  RerollFunc
	err     error
}

func newWalkModel(items []list.Item, reroll RerollFunc) walkModel {
	barList := list.New(items, barDelegate{}, 80, 20)
	barList.SetShowPagination(false)
	barList.SetShowFilter(false)
	barList.SetShowHelp(false)
	barList.SetShowTitle(false)
	barList.SetShowStatusBar(false)

	return walkModel{barList: barList, reroll: reroll}
}

func (m walkModel) Init() tea.Cmd {
	return nil
}

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.barList.SetWidth(m.width)

	case rerolledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		items := m.barList.Items()
		if msg.index >= 0 && msg.index < len(items) {
			m.barList.SetItem(msg.index, barItem{index: msg.index, bar: msg.bar})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.rerollSelected()
		default:
			var newList list.Model

			newList, cmd = m.barList.Update(msg)
			m.barList = newList

			return m, cmd
		}
	}

	return m, cmd
}

// rerollSelected regenerates the highlighted bar.
func (m walkModel) rerollSelected() tea.Cmd {
	if m.reroll == nil {
		return nil
	}

	index := m.barList.Index()

	return func() tea.Msg {
		bar, err := m.reroll(index)

		return rerolledMsg{index: index, bar: bar, err: err}
	}
}

func (m walkModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render("🎸 Basswalk")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(0, 0, 1, 2)

		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			errStyle.Render(fmt.Sprintf("reroll failed: %v", m.err)),
		)
	}

	listHeight := m.height - 7
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6
	if listWidth < 20 {
		listWidth = 74
	}

	m.barList.SetHeight(listHeight)
	m.barList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-8s  %-20s %s", "Chord", "MIDI", "Notes"))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	table := container.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.barList.View(),
		),
	)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 0, 0, 2)

	footer := footerStyle.Render("↑/k up • ↓/j down • r reroll bar • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		table,
		footer,
	)
}
