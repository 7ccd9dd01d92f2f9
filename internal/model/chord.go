package model

// Chord is a parsed chord symbol.
type Chord struct {
	Symbol string // raw symbol, e.g. "C7b5"
	Root   string // pitch-class spelling, e.g. "C", "F#", "Bb"
	Flavor string // suffix after the root, possibly empty
	Scale  string // scale chosen for this chord (modal or selector-based)
}
