package theory

import "sort"

// chordTones maps a chord flavor (the symbol minus its root) to semitone
// offsets from the root. An empty flavor is a major triad.
var chordTones = map[string][]int{
	"":      {0, 4, 7},
	"M":     {0, 4, 7},
	"maj":   {0, 4, 7},
	"m":     {0, 3, 7},
	"min":   {0, 3, 7},
	"5":     {0, 7},
	"6":     {0, 4, 7, 9},
	"m6":    {0, 3, 7, 9},
	"69":    {0, 4, 7, 9, 14},
	"7":     {0, 4, 7, 10},
	"M7":    {0, 4, 7, 11},
	"maj7":  {0, 4, 7, 11},
	"m7":    {0, 3, 7, 10},
	"min7":  {0, 3, 7, 10},
	"mM7":   {0, 3, 7, 11},
	"9":     {0, 4, 7, 10, 14},
	"M9":    {0, 4, 7, 11, 14},
	"m9":    {0, 3, 7, 10, 14},
	"11":    {0, 4, 7, 10, 14, 17},
	"m11":   {0, 3, 7, 10, 14, 17},
	"13":    {0, 4, 7, 10, 14, 21},
	"m13":   {0, 3, 7, 10, 14, 21},
	"add9":  {0, 4, 7, 14},
	"sus2":  {0, 2, 7},
	"sus4":  {0, 5, 7},
	"7sus4": {0, 5, 7, 10},
	"dim":   {0, 3, 6},
	"dim7":  {0, 3, 6, 9},
	"m7b5":  {0, 3, 6, 10},
	"aug":   {0, 4, 8},
	"aug7":  {0, 4, 8, 10},
	"b5":    {0, 4, 6},
	"#5":    {0, 4, 8},
	"7b5":   {0, 4, 6, 10},
	"7#5":   {0, 4, 8, 10},
	"7b9":   {0, 4, 7, 10, 13},
	"7#9":   {0, 4, 7, 10, 15},
	"M7b5":  {0, 4, 6, 11},
	"M7#5":  {0, 4, 8, 11},
}

// ChordTones returns the semitone offsets for a chord flavor. The second
// return value is false for flavors not in the table.
func ChordTones(flavor string) ([]int, bool) {
	tones, ok := chordTones[flavor]
	if !ok {
		return nil, false
	}

	out := make([]int, len(tones))
	copy(out, tones)

	return out, true
}

// Flavors lists every known chord flavor in sorted order.
func Flavors() []string {
	flavors := make([]string, 0, len(chordTones))
	for flavor := range chordTones {
		flavors = append(flavors, flavor)
	}

	sort.Strings(flavors)

	return flavors
}
