// Package theory holds the pitch, chord and scale lookup tables the
// generation engine draws from. Everything here is a pure function over
// fixed tables.
package theory

import (
	"fmt"
	"strings"

	m "github.com/ology/basswalk/internal/model"
)

// sharpNames and flatNames spell the twelve pitch classes starting at C.
var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// classOffsets maps every valid pitch-class spelling to its semitone
// offset from C.
var classOffsets = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// IsPitchClass reports whether name is a valid pitch-class spelling.
func IsPitchClass(name string) bool {
	_, ok := classOffsets[name]
	return ok
}

// NoteToMIDI converts a pitch-class spelling and octave to a MIDI pitch.
// C2 maps to MIDI 36, so the MIDI number is (octave+1)*12 + offset.
func NoteToMIDI(name string, octave int) (m.Pitch, bool) {
	offset, ok := classOffsets[name]
	if !ok {
		return 0, false
	}

	return m.Pitch((octave+1)*12 + offset), true
}

// ClassName returns the sharp-based pitch-class spelling of a MIDI pitch.
func ClassName(p m.Pitch) string {
	pc := int(p) % 12
	if pc < 0 {
		pc += 12
	}

	return sharpNames[pc]
}

// PitchName returns the full note name of a MIDI pitch, e.g. 36 -> "C2".
func PitchName(p m.Pitch) string {
	octave := int(p)/12 - 1
	return fmt.Sprintf("%s%d", ClassName(p), octave)
}

// Respell returns the opposite-accidental spelling of a note name:
// sharp spellings become flat and vice versa. Naturals are returned
// unchanged.
func Respell(name string) string {
	offset, ok := classOffsets[name]
	if !ok {
		return name
	}

	switch {
	case strings.Contains(name, "#"):
		return flatNames[offset]
	case strings.Contains(name, "b"):
		return sharpNames[offset]
	default:
		return name
	}
}
