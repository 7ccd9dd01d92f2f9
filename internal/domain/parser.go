package domain

import (
	"regexp"

	m "github.com/ology/basswalk/internal/model"
	"github.com/ology/basswalk/internal/theory"
)

// chordPattern splits a chord symbol into a leading pitch-class spelling
// and the flavor suffix.
var chordPattern = regexp.MustCompile(`^([A-G][#b]?)(.*)$`)

// parseChord resolves a chord symbol into its root, flavor and scale.
func (g *generator) parseChord(symbol string) (m.Chord, error) {
	match := chordPattern.FindStringSubmatch(symbol)
	if match == nil || !theory.IsPitchClass(match[1]) {
		return m.Chord{}, m.InvalidChordError{Symbol: symbol}
	}

	chord := m.Chord{
		Symbol: symbol,
		Root:   match[1],
		Flavor: match[2],
	}

	if g.cfg.Modal {
		chord.Scale = modalScale(g.cfg.KeyCenter, chord.Root)
	} else {
		chord.Scale = g.cfg.Selector(symbol)
	}

	return chord, nil
}

// modalScale maps a chord root to one of the seven modes by its position
// in the key center's ionian scale. The lookup is by exact spelling, not
// pitch-class equivalence, so enharmonic respellings of a diatonic note
// fall back to ionian.
func modalScale(keyCenter, root string) string {
	names, ok := theory.DegreeNames(keyCenter, "ionian")
	if !ok {
		return "ionian"
	}

	modes := theory.Modes()

	for i, name := range names {
		if name == root {
			return modes[i]
		}
	}

	return "ionian"
}
