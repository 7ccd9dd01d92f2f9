// Package domain contains the core bassline generation engine.
package domain

import (
	"fmt"
	"strings"

	m "github.com/ology/basswalk/internal/model"
	"github.com/ology/basswalk/internal/theory"
)

// defaultIntervals are the semitone steps the walk may take.
var defaultIntervals = []int{-3, -2, -1, 1, 2, 3}

// ScaleSelector picks a scale name for a chord symbol in non-modal mode.
// It must be total: any string in, some scale name (possibly "") out.
type ScaleSelector func(chord string) string

// Config holds the immutable generation settings. Construct it with
// NewConfig; it has no mutation methods afterwards.
type Config struct {
	Guitar        bool
	Modal         bool
	UseChordTones bool
	KeyCenter     string
	Intervals     []int
	Octave        int
	Selector      ScaleSelector
	TonicBias     bool
	Degrees       map[int]struct{}
	Verbose       bool
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithGuitar transposes pitches below E2 up an octave.
func WithGuitar() Option {
	return func(c *Config) { c.Guitar = true }
}

// WithModal selects scales modally, keyed to the key center.
func WithModal() Option {
	return func(c *Config) { c.Modal = true }
}

// WithoutChordTones leaves chord tones out of the candidate pool.
func WithoutChordTones() Option {
	return func(c *Config) { c.UseChordTones = false }
}

// WithKeyCenter sets the modal key center.
func WithKeyCenter(key string) Option {
	return func(c *Config) { c.KeyCenter = key }
}

// WithIntervals sets the allowed walk steps in semitones.
func WithIntervals(intervals ...int) Option {
	return func(c *Config) { c.Intervals = intervals }
}

// WithOctave sets the octave pitches are derived at.
func WithOctave(octave int) Option {
	return func(c *Config) { c.Octave = octave }
}

// WithScaleSelector installs a custom non-modal scale selector.
func WithScaleSelector(sel ScaleSelector) Option {
	return func(c *Config) { c.Selector = sel }
}

// WithTonicBias steers the first note of each phrase toward I, III or V.
func WithTonicBias() Option {
	return func(c *Config) { c.TonicBias = true }
}

// WithDegrees restricts which scale positions may enter the pool.
func WithDegrees(degrees ...int) Option {
	return func(c *Config) {
		c.Degrees = make(map[int]struct{}, len(degrees))
		for _, d := range degrees {
			c.Degrees[d] = struct{}{}
		}
	}
}

// WithVerbose enables progress logging.
func WithVerbose() Option {
	return func(c *Config) { c.Verbose = true }
}

// NewConfig applies options over the defaults and validates the result.
// Each invalid field fails with a model.ValidationError naming it.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		UseChordTones: true,
		KeyCenter:     "C",
		Intervals:     defaultIntervals,
		Octave:        2,
		Selector:      MajMinSelector,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if !theory.IsPitchClass(cfg.KeyCenter) {
		return Config{}, m.ValidationError{Field: "keyCenter", Reason: fmt.Sprintf("%q is not a pitch class", cfg.KeyCenter)}
	}

	if len(cfg.Intervals) == 0 {
		return Config{}, m.ValidationError{Field: "intervals", Reason: "must not be empty"}
	}

	if cfg.Octave < 1 {
		return Config{}, m.ValidationError{Field: "octave", Reason: "must be positive"}
	}

	if cfg.Selector == nil {
		return Config{}, m.ValidationError{Field: "scaleSelector", Reason: "must not be nil"}
	}

	for d := range cfg.Degrees {
		if d < 0 {
			return Config{}, m.ValidationError{Field: "degrees", Reason: fmt.Sprintf("degree %d is negative", d)}
		}
	}

	return cfg, nil
}

// MajMinSelector is the default selector: minor scale for minor-looking
// chords (an "m" suffix that is not "maj"), major otherwise.
func MajMinSelector(chord string) string {
	flavor := flavorOf(chord)
	if strings.HasPrefix(flavor, "m") && !strings.HasPrefix(flavor, "maj") {
		return "minor"
	}

	return "major"
}

// PentatonicSelector mirrors MajMinSelector over the pentatonic scales.
func PentatonicSelector(chord string) string {
	flavor := flavorOf(chord)
	if strings.HasPrefix(flavor, "m") && !strings.HasPrefix(flavor, "maj") {
		return "minor pentatonic"
	}

	return "pentatonic"
}

// ChromaticSelector always picks the chromatic scale.
func ChromaticSelector(string) string {
	return "chromatic"
}

// NoScaleSelector picks no scale, leaving chord tones as the only pool.
func NoScaleSelector(string) string {
	return ""
}

// SelectorPreset resolves a named selector preset.
func SelectorPreset(name string) (ScaleSelector, bool) {
	switch name {
	case "", "majmin":
		return MajMinSelector, true
	case "pentatonic":
		return PentatonicSelector, true
	case "chromatic":
		return ChromaticSelector, true
	case "none":
		return NoScaleSelector, true
	default:
		return nil, false
	}
}

// flavorOf strips a leading pitch-class spelling off a chord symbol. It
// tolerates malformed symbols since selectors must be total functions.
func flavorOf(chord string) string {
	match := chordPattern.FindStringSubmatch(chord)
	if match == nil {
		return chord
	}

	return match[2]
}
