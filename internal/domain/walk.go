package domain

import (
	"math/rand"

	m "github.com/ology/basswalk/internal/model"
)

// phrase runs the constrained random walk over a fixed pool, then applies
// the tonic-bias and next-chord-anticipation overrides.
func (g *generator) phrase(rng *rand.Rand, pool m.Pool, count int, scale string, nextPool m.Pool) m.Phrase {
	if count <= 0 {
		return m.Phrase{}
	}

	// Seed the walk at the pool's midpoint without emitting it.
	current := pool[len(pool)/2]
	notes := make(m.Phrase, 0, count)

	for i := 0; i < count; i++ {
		step := g.cfg.Intervals[rng.Intn(len(g.cfg.Intervals))]
		target := current + m.Pitch(step)
		current = snapToPool(rng, pool, target)
		notes = append(notes, current)
	}

	g.applyTonicBias(rng, pool, notes, scale)
	g.applyAnticipation(rng, pool, nextPool, notes)

	return notes
}

// snapToPool picks the pool member closest to target, choosing uniformly
// among equally close members.
func snapToPool(rng *rand.Rand, pool m.Pool, target m.Pitch) m.Pitch {
	best := absDiff(pool[0], target)
	ties := []m.Pitch{pool[0]}

	for _, p := range pool[1:] {
		switch d := absDiff(p, target); {
		case d < best:
			best = d
			ties = ties[:0]
			ties = append(ties, p)
		case d == best:
			ties = append(ties, p)
		}
	}

	return ties[rng.Intn(len(ties))]
}

// applyTonicBias replaces the first note with the chord-tone degree
// closest to the second note. Pool positions 0,2,4 hold I,III,V for the
// seven-note major and minor scales; pentatonic pools keep them at 0,1,2.
func (g *generator) applyTonicBias(rng *rand.Rand, pool m.Pool, notes m.Phrase, scale string) {
	if !g.cfg.TonicBias || len(notes) < 2 {
		return
	}

	var positions []int

	switch scale {
	case "major", "minor":
		positions = []int{0, 2, 4}
	case "pentatonic", "minor pentatonic":
		positions = []int{0, 1, 2}
	default:
		return
	}

	var candidates []m.Pitch

	for _, pos := range positions {
		if pos < len(pool) {
			candidates = append(candidates, pool[pos])
		}
	}

	if p, ok := closestPitch(rng, notes[1], candidates); ok {
		g.log.Debugw("tonic bias", "from", notes[0], "to", p)
		notes[0] = p
	}
}

// applyAnticipation replaces the last note with a pitch shared by this
// chord's pool and the next chord's, easing the voice-leading into the
// change. Keyed on the penultimate note, or the final one when the
// phrase is a single note.
func (g *generator) applyAnticipation(rng *rand.Rand, pool, nextPool m.Pool, notes m.Phrase) {
	if len(nextPool) == 0 || len(notes) == 0 {
		return
	}

	shared := pool.Intersect(nextPool)
	if len(shared) == 0 {
		return
	}

	keyIdx := len(notes) - 2
	if keyIdx < 0 {
		keyIdx = len(notes) - 1
	}

	if p, ok := closestPitch(rng, notes[keyIdx], shared); ok {
		g.log.Debugw("next-chord anticipation", "from", notes[len(notes)-1], "to", p)
		notes[len(notes)-1] = p
	}
}

// closestPitch returns the candidate nearest the key, excluding the key
// itself and breaking ties uniformly at random. The second return value
// is false when no candidate remains; callers treat that as a no-op.
func closestPitch(rng *rand.Rand, key m.Pitch, candidates []m.Pitch) (m.Pitch, bool) {
	var ties []m.Pitch

	best := m.Pitch(-1)

	for _, c := range candidates {
		if c == key {
			continue
		}

		switch d := absDiff(c, key); {
		case best < 0 || d < best:
			best = d
			ties = ties[:0]
			ties = append(ties, c)
		case d == best:
			ties = append(ties, c)
		}
	}

	if len(ties) == 0 {
		return 0, false
	}

	return ties[rng.Intn(len(ties))], true
}

func absDiff(a, b m.Pitch) m.Pitch {
	if a > b {
		return a - b
	}

	return b - a
}
