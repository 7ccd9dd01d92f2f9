// Package model defines the data structures for bassline generation.
package model

// Pitch is a MIDI pitch number (0-127).
type Pitch int

// Phrase is an ordered sequence of pitches generated for a single chord.
type Phrase []Pitch

// Pool is the fixed, ascending, deduplicated set of candidate pitches
// that a walk draws from. Built fresh per generation call.
type Pool []Pitch

// Contains reports whether p is a member of the pool.
func (pl Pool) Contains(p Pitch) bool {
	for _, q := range pl {
		if q == p {
			return true
		}
	}

	return false
}

// Intersect returns the pitches present in both pools, preserving
// the receiver's order.
func (pl Pool) Intersect(other Pool) Pool {
	var out Pool

	for _, p := range pl {
		if other.Contains(p) {
			out = append(out, p)
		}
	}

	return out
}

// Bar pairs a chord symbol with the phrase generated for it.
type Bar struct {
	Chord string
	Notes Phrase
}
