package domain

import (
	"errors"
	"math/rand"
	"testing"

	m "github.com/ology/basswalk/internal/model"
)

// newTestGenerator builds a generator with a seeded random source so the
// walks are reproducible.
func newTestGenerator(t *testing.T, seed int64, opts ...Option) *generator {
	t.Helper()

	cfg, err := NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	return &generator{cfg: cfg, rng: rand.New(rand.NewSource(seed)), log: NopLogger()}
}

func TestGenerate(t *testing.T) {
	t.Run("returns exactly count pool members", func(t *testing.T) {
		g := newTestGenerator(t, 42)
		pool := m.Pool{36, 38, 40, 41, 43, 45, 47}

		for _, count := range []int{0, 1, 4, 32} {
			notes, err := g.Generate("C", count, "")
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			if len(notes) != count {
				t.Fatalf("expected %d notes, got %d", count, len(notes))
			}

			for _, n := range notes {
				if !pool.Contains(n) {
					t.Errorf("note %d is not in the C major pool", n)
				}
			}
		}
	})

	t.Run("empty chord defaults to C", func(t *testing.T) {
		g := newTestGenerator(t, 42)

		notes, err := g.Generate("", 4, "")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if len(notes) != 4 {
			t.Fatalf("expected 4 notes, got %d", len(notes))
		}
	})

	t.Run("negative count fails validation", func(t *testing.T) {
		g := newTestGenerator(t, 42)

		_, err := g.Generate("C", -1, "")

		var verr m.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("invalid chord and next chord fail", func(t *testing.T) {
		g := newTestGenerator(t, 42)

		var cerr m.InvalidChordError

		_, err := g.Generate("H7", 4, "")
		if !errors.As(err, &cerr) {
			t.Fatalf("expected InvalidChordError, got %v", err)
		}

		_, err = g.Generate("C", 4, "H7")
		if !errors.As(err, &cerr) {
			t.Fatalf("expected InvalidChordError for next chord, got %v", err)
		}
	})

	t.Run("fixed seeds reproduce the walk", func(t *testing.T) {
		first, err := newTestGenerator(t, 99).Generate("Dm7", 16, "G7")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		second, err := newTestGenerator(t, 99).Generate("Dm7", 16, "G7")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("runs diverge at note %d: %v vs %v", i, first, second)
			}
		}
	})
}

func TestTonicBias(t *testing.T) {
	tonic := map[m.Pitch]bool{36: true, 40: true, 43: true} // C2 E2 G2

	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(t, seed, WithTonicBias())

		notes, err := g.Generate("C", 4, "")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if !tonic[notes[0]] {
			t.Fatalf("seed %d: first note %d is not in {36, 40, 43}", seed, notes[0])
		}
	}
}

func TestNextChordAnticipation(t *testing.T) {
	shared := map[m.Pitch]bool{41: true, 43: true, 45: true} // F G A

	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(t, seed)

		notes, err := g.Generate("C", 4, "F")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		last := notes[len(notes)-1]
		if !shared[last] {
			t.Fatalf("seed %d: last note %d is not shared with the F pool", seed, last)
		}
	}
}

func TestModalGeneration(t *testing.T) {
	g := newTestGenerator(t, 3, WithModal(), WithKeyCenter("C"))

	notes, err := g.Generate("Dm7", 99, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// D dorian derived from C ionian has no A#.
	for _, n := range notes {
		if n == 46 {
			t.Fatal("modal D dorian must never emit A#2 (46)")
		}
	}
}

func TestProgression(t *testing.T) {
	t.Run("one bar per chord", func(t *testing.T) {
		g := newTestGenerator(t, 11)
		chords := []string{"C7", "F7", "G7"}

		bars, err := g.Progression(chords, 4)
		if err != nil {
			t.Fatalf("Progression failed: %v", err)
		}

		if len(bars) != len(chords) {
			t.Fatalf("expected %d bars, got %d", len(chords), len(bars))
		}

		for i, bar := range bars {
			if bar.Chord != chords[i] {
				t.Errorf("bar %d chord = %q, want %q", i, bar.Chord, chords[i])
			}

			if len(bar.Notes) != 4 {
				t.Errorf("bar %d has %d notes, want 4", i, len(bar.Notes))
			}
		}
	})

	t.Run("reproducible under a fixed seed", func(t *testing.T) {
		chords := []string{"Dm7", "G7", "CM7", "A7"}

		first, err := newTestGenerator(t, 5).Progression(chords, 8)
		if err != nil {
			t.Fatalf("Progression failed: %v", err)
		}

		second, err := newTestGenerator(t, 5).Progression(chords, 8)
		if err != nil {
			t.Fatalf("Progression failed: %v", err)
		}

		for i := range first {
			for j := range first[i].Notes {
				if first[i].Notes[j] != second[i].Notes[j] {
					t.Fatalf("bar %d diverges: %v vs %v", i, first[i].Notes, second[i].Notes)
				}
			}
		}
	})

	t.Run("empty progression yields nothing", func(t *testing.T) {
		g := newTestGenerator(t, 11)

		bars, err := g.Progression(nil, 4)
		if err != nil {
			t.Fatalf("Progression failed: %v", err)
		}

		if bars != nil {
			t.Fatalf("expected nil, got %v", bars)
		}
	})

	t.Run("bad chord anywhere fails the whole run", func(t *testing.T) {
		g := newTestGenerator(t, 11)

		_, err := g.Progression([]string{"C7", "H7"}, 4)
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("NewGenerator defaults are usable", func(t *testing.T) {
		cfg, err := NewConfig()
		if err != nil {
			t.Fatalf("NewConfig failed: %v", err)
		}

		gen := NewGenerator(cfg, nil, nil)

		notes, err := gen.Generate("C", 4, "")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if len(notes) != 4 {
			t.Fatalf("expected 4 notes, got %d", len(notes))
		}
	})
}
