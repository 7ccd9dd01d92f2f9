package controller

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/ology/basswalk/internal/model"
)

func testBars() []list.Item {
	return []list.Item{
		barItem{index: 0, bar: m.Bar{Chord: "C7", Notes: m.Phrase{36, 40, 43, 46}}},
		barItem{index: 1, bar: m.Bar{Chord: "F7", Notes: m.Phrase{41, 45, 48, 51}}},
	}
}

func TestWalkModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		model := newWalkModel(testBars(), nil)

		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		_, cmd := model.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q should produce a command", key)
		}

		if cmd() != tea.Quit() {
			t.Errorf("key %q should quit", key)
		}
	}
}

func TestWalkModel_WindowSize(t *testing.T) {
	model := newWalkModel(testBars(), nil)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	wm, ok := updated.(walkModel)
	if !ok {
		t.Fatalf("Update returned %T, want walkModel", updated)
	}

	if wm.width != 120 || wm.height != 40 {
		t.Errorf("size = (%d, %d), want (120, 40)", wm.width, wm.height)
	}
}

func TestWalkModel_RerolledMsgReplacesBar(t *testing.T) {
	model := newWalkModel(testBars(), nil)

	newBar := m.Bar{Chord: "C7", Notes: m.Phrase{43, 46, 40, 36}}
	updated, _ := model.Update(rerolledMsg{index: 0, bar: newBar})

	wm := updated.(walkModel)

	item, ok := wm.barList.Items()[0].(barItem)
	if !ok {
		t.Fatalf("item 0 is %T, want barItem", wm.barList.Items()[0])
	}

	if item.bar.Notes[0] != 43 {
		t.Errorf("bar not replaced, notes = %v", item.bar.Notes)
	}
}

func TestWalkModel_RerolledMsgError(t *testing.T) {
	model := newWalkModel(testBars(), nil)

	updated, _ := model.Update(rerolledMsg{index: 0, err: errors.New("boom")})

	wm := updated.(walkModel)
	if wm.err == nil {
		t.Fatal("expected error to be stored")
	}

	if !strings.Contains(wm.View(), "reroll failed") {
		t.Error("view should report the reroll failure")
	}
}

func TestWalkModel_RerollKeyProducesMsg(t *testing.T) {
	reroll := func(index int) (m.Bar, error) {
		return m.Bar{Chord: "C7", Notes: m.Phrase{36}}, nil
	}

	model := newWalkModel(testBars(), reroll)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatal("r should produce a reroll command")
	}

	msg, ok := cmd().(rerolledMsg)
	if !ok {
		t.Fatalf("command produced %T, want rerolledMsg", cmd())
	}

	if msg.index != 0 || msg.err != nil {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestWalkModel_RerollWithoutCallback(t *testing.T) {
	model := newWalkModel(testBars(), nil)

	if cmd := model.rerollSelected(); cmd != nil {
		t.Error("reroll without callback should be a no-op")
	}
}

func TestWalkModel_ViewShowsBars(t *testing.T) {
	model := newWalkModel(testBars(), nil)
	model.width = 100
	model.height = 30

	view := model.View()

	for _, want := range []string{"Basswalk", "Chord", "C7", "F7"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBarItem_FilterValue(t *testing.T) {
	item := barItem{bar: m.Bar{Chord: "Dm7"}}

	if item.FilterValue() != "Dm7" {
		t.Errorf("FilterValue() = %q, want Dm7", item.FilterValue())
	}
}
