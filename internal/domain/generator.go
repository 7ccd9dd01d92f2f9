package domain

import (
	"math/rand"
	"time"

	m "github.com/ology/basswalk/internal/model"
	"golang.org/x/sync/errgroup"
)

// Generator produces walking basslines from chord symbols.
type Generator interface {
	// Generate returns exactly count pitches for one chord, optionally
	// steering the final note toward the next chord.
	Generate(chord string, count int, next string) (m.Phrase, error)
	// Progression generates one bar per chord, each bar anticipating the
	// chord that follows it.
	Progression(chords []string, count int) ([]m.Bar, error)
}

type generator struct {
	cfg Config
	rng *rand.Rand
	log Logger
}

// NewGenerator creates a Generator. A nil rng gets a time-seeded source;
// a nil log discards output.
func NewGenerator(cfg Config, rng *rand.Rand, log Logger) Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if log == nil {
		log = NopLogger()
	}

	return &generator{cfg: cfg, rng: rng, log: log}
}

// Generate is a pure function of (Config, chord, count, next, rng): the
// pool is built fresh per call and nothing is shared across calls.
func (g *generator) Generate(chord string, count int, next string) (m.Phrase, error) {
	if count < 0 {
		return nil, m.ValidationError{Field: "count", Reason: "must not be negative"}
	}

	if chord == "" {
		chord = "C"
	}

	parsed, err := g.parseChord(chord)
	if err != nil {
		return nil, err
	}

	pool, err := g.buildPool(parsed)
	if err != nil {
		return nil, err
	}

	var nextPool m.Pool

	if next != "" {
		nextParsed, err := g.parseChord(next)
		if err != nil {
			return nil, err
		}

		nextPool, err = g.buildPool(nextParsed)
		if err != nil {
			return nil, err
		}
	}

	return g.phrase(g.rng, pool, count, parsed.Scale, nextPool), nil
}

// Progression fans the bars out over an errgroup. Bar i depends only on
// chords i and i+1, so bars are independent; each gets a child RNG seeded
// from the parent up front to keep runs reproducible under a fixed seed.
func (g *generator) Progression(chords []string, count int) ([]m.Bar, error) {
	if len(chords) == 0 {
		return nil, nil
	}

	seeds := make([]int64, len(chords))
	for i := range seeds {
		seeds[i] = g.rng.Int63()
	}

	bars := make([]m.Bar, len(chords))

	var eg errgroup.Group

	for i := range chords {
		i := i

		eg.Go(func() error {
			local := &generator{
				cfg: g.cfg,
				rng: rand.New(rand.NewSource(seeds[i])),
				log: g.log,
			}

			next := ""
			if i+1 < len(chords) {
				next = chords[i+1]
			}

			notes, err := local.Generate(chords[i], count, next)
			if err != nil {
				return err
			}

			bars[i] = m.Bar{Chord: chords[i], Notes: notes}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return bars, nil
}
