package domain

import (
	"sort"
	"strings"

	m "github.com/ology/basswalk/internal/model"
	"github.com/ology/basswalk/internal/theory"
)

// lowGuitar is the lowest pitch of a standard-tuned guitar (E2). In
// guitar mode anything below it is lifted an octave.
const lowGuitar m.Pitch = 40

// buildPool runs the pool pipeline for one chord: candidate collection,
// flavor pruning and range normalization.
func (g *generator) buildPool(chord m.Chord) (m.Pool, error) {
	offsets, ok := theory.ChordTones(chord.Flavor)
	if !ok {
		return nil, m.UnknownChordError{Symbol: chord.Symbol, Flavor: chord.Flavor}
	}

	root, _ := theory.NoteToMIDI(chord.Root, g.cfg.Octave)

	pool := g.scalePitches(chord)

	if g.cfg.UseChordTones {
		for _, offset := range offsets {
			p := root + m.Pitch(offset)
			if !pool.Contains(p) {
				pool = append(pool, p)
			}
		}
	}

	sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })

	g.log.Debugw("candidate pool", "chord", chord.Symbol, "scale", chord.Scale, "pool", pool)

	pool = g.pruneFlavored(pool, chord)
	pool = normalizeRange(pool, g.cfg.Guitar)

	if len(pool) == 0 {
		return nil, m.EmptyPoolError{Chord: chord.Symbol}
	}

	return pool, nil
}

// scalePitches renders the chord's scale, restricted to the allowed
// degree positions when configured.
func (g *generator) scalePitches(chord m.Chord) m.Pool {
	if chord.Scale == "" {
		return nil
	}

	pitches, ok := theory.ScalePitches(chord.Root, chord.Scale, g.cfg.Octave)
	if !ok {
		return nil
	}

	if g.cfg.Degrees == nil {
		return m.Pool(pitches)
	}

	var pool m.Pool

	for i, p := range pitches {
		if _, ok := g.cfg.Degrees[i]; ok {
			pool = append(pool, p)
		}
	}

	return pool
}

// pruneFlavored drops scale degrees that clash with the chord's extended
// or altered tones. Pruning applies whenever degree names are available
// for the chord's scale.
func (g *generator) pruneFlavored(pool m.Pool, chord m.Chord) m.Pool {
	tones, ok := theory.DegreeNames(chord.Root, chord.Scale)
	if !ok || len(tones) == 0 {
		return pool
	}

	degrees := conflictDegrees(chord.Flavor)
	if len(degrees) == 0 {
		return pool
	}

	kept := make(m.Pool, 0, len(pool))

	for _, p := range pool {
		if g.conflicts(p, tones, degrees, chord) {
			continue
		}

		kept = append(kept, p)
	}

	return kept
}

// conflicts reports whether a pitch names one of the conflicting degrees,
// under either its own spelling or its opposite-accidental respelling.
func (g *generator) conflicts(p m.Pitch, tones []string, degrees []int, chord m.Chord) bool {
	name := theory.ClassName(p)
	alt := theory.Respell(name)

	for _, d := range degrees {
		if d >= len(tones) {
			continue
		}

		if name == tones[d] || alt == tones[d] {
			g.log.Debugw("pruned clashing degree", "chord", chord.Symbol, "pitch", p, "degree", d+1, "tone", tones[d])
			return true
		}
	}

	return false
}

// conflictDegrees maps a chord flavor to the 0-based scale degrees its
// alterations replace.
func conflictDegrees(flavor string) []int {
	var degrees []int

	if strings.Contains(flavor, "#5") || strings.Contains(flavor, "b5") {
		degrees = append(degrees, 4)
	}

	if strings.Contains(flavor, "7") && !dominantExempt(flavor) {
		degrees = append(degrees, 6)
	}

	if strings.Contains(flavor, "#9") || strings.Contains(flavor, "b9") {
		degrees = append(degrees, 1)
	}

	if strings.Contains(flavor, "dim") {
		degrees = append(degrees, 2, 6)
	}

	if strings.Contains(flavor, "aug") {
		degrees = append(degrees, 6)
	}

	return dedupeInts(degrees)
}

// dominantExempt reports whether a flavor's 7 is a major or minor
// seventh rather than a dominant one.
func dominantExempt(flavor string) bool {
	return strings.Contains(flavor, "M7") ||
		strings.Contains(flavor, "m7") ||
		strings.Contains(flavor, "maj7")
}

// normalizeRange applies the guitar-register lift and deduplicates,
// keeping ascending order.
func normalizeRange(pool m.Pool, guitar bool) m.Pool {
	if guitar {
		for i, p := range pool {
			if p < lowGuitar {
				pool[i] = p + 12
			}
		}

		sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })
	}

	out := make(m.Pool, 0, len(pool))

	for _, p := range pool {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}

	return out
}

func dedupeInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))

	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
