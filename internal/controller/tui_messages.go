package controller

import m "github.com/ology/basswalk/internal/model"

// Message types.
type rerolledMsg struct {
	index int
	bar   m.Bar
	err   error
}

// List item types.
type barItem struct {
	index int
	bar   m.Bar
}

func (b barItem) FilterValue() string {
	return b.bar.Chord
}
