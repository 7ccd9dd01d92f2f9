package model

import "fmt"

// ValidationError reports a bad configuration field at construction time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidChordError reports a chord symbol whose leading token is not a
// valid pitch-class spelling.
type InvalidChordError struct {
	Symbol string
}

func (e InvalidChordError) Error() string {
	return fmt.Sprintf("invalid chord symbol %q: root must match [A-G](#|b)?", e.Symbol)
}

// UnknownChordError reports a well-formed chord whose flavor is not in the
// chord table. Callers wanting looser behavior should catch this and fall
// back explicitly.
type UnknownChordError struct {
	Symbol string
	Flavor string
}

func (e UnknownChordError) Error() string {
	return fmt.Sprintf("unknown chord flavor %q in %q", e.Flavor, e.Symbol)
}

// EmptyPoolError reports that pruning and normalization left no usable
// pitches for the walk.
type EmptyPoolError struct {
	Chord string
}

func (e EmptyPoolError) Error() string {
	return fmt.Sprintf("no candidate pitches remain for chord %q", e.Chord)
}
