package theory

import (
	"sort"
	"strings"

	m "github.com/ology/basswalk/internal/model"
)

// scaleIntervals maps a scale name to its semitone step pattern. The
// pattern has one entry per degree; the last step closes the octave.
var scaleIntervals = map[string][]int{
	"ionian":           {2, 2, 1, 2, 2, 2, 1},
	"dorian":           {2, 1, 2, 2, 2, 1, 2},
	"phrygian":         {1, 2, 2, 2, 1, 2, 2},
	"lydian":           {2, 2, 2, 1, 2, 2, 1},
	"mixolydian":       {2, 2, 1, 2, 2, 1, 2},
	"aeolian":          {2, 1, 2, 2, 1, 2, 2},
	"locrian":          {1, 2, 2, 1, 2, 2, 2},
	"major":            {2, 2, 1, 2, 2, 2, 1},
	"minor":            {2, 1, 2, 2, 1, 2, 2},
	"pentatonic":       {2, 2, 3, 2, 3},
	"minor pentatonic": {3, 2, 2, 3, 2},
	"chromatic":        {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// modes lists the seven modal scale names in diatonic order, so the
// position of a chord root in a key's ionian scale selects its mode.
var modes = [7]string{"ionian", "dorian", "phrygian", "lydian", "mixolydian", "aeolian", "locrian"}

// Modes returns the seven modal scale names in diatonic order.
func Modes() [7]string {
	return modes
}

// ScaleIntervals returns the step pattern of a named scale.
func ScaleIntervals(name string) ([]int, bool) {
	steps, ok := scaleIntervals[name]
	if !ok {
		return nil, false
	}

	out := make([]int, len(steps))
	copy(out, steps)

	return out, true
}

// ScaleNames lists every known scale in sorted order.
func ScaleNames() []string {
	names := make([]string, 0, len(scaleIntervals))
	for name := range scaleIntervals {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ScalePitches renders a scale as MIDI pitches spanning one octave from
// the root at the given octave. Returns false for unknown roots or scales.
func ScalePitches(root, scale string, octave int) ([]m.Pitch, bool) {
	steps, ok := scaleIntervals[scale]
	if !ok {
		return nil, false
	}

	start, ok := NoteToMIDI(root, octave)
	if !ok {
		return nil, false
	}

	pitches := make([]m.Pitch, 0, len(steps))
	current := start

	for _, step := range steps {
		pitches = append(pitches, current)
		current += m.Pitch(step)
	}

	return pitches, true
}

// letters orders the seven note letters with their natural semitone
// offsets from C.
var letters = []struct {
	name   string
	offset int
}{
	{"C", 0}, {"D", 2}, {"E", 4}, {"F", 5}, {"G", 7}, {"A", 9}, {"B", 11},
}

// DegreeNames spells the degrees of a scale at the given root. Seven-note
// scales are spelled with consecutive letters so each degree keeps its
// diatonic letter (D dorian -> D E F G A B C). Other scales fall back to
// sharp-based class names.
func DegreeNames(root, scale string) ([]string, bool) {
	steps, ok := scaleIntervals[scale]
	if !ok {
		return nil, false
	}

	rootOffset, ok := classOffsets[root]
	if !ok {
		return nil, false
	}

	if len(steps) != 7 {
		return chromaticDegreeNames(rootOffset, steps), true
	}

	rootLetter := strings.ToUpper(root[:1])
	letterIdx := 0

	for i, l := range letters {
		if l.name == rootLetter {
			letterIdx = i
		}
	}

	names := make([]string, 0, len(steps))
	offset := rootOffset

	for i := range steps {
		letter := letters[(letterIdx+i)%7]
		names = append(names, spellDegree(letter.name, letter.offset, offset%12))
		offset += steps[i]
	}

	return names, true
}

// chromaticDegreeNames names non-heptatonic scale degrees with sharp
// spellings.
func chromaticDegreeNames(rootOffset int, steps []int) []string {
	names := make([]string, 0, len(steps))
	offset := rootOffset

	for _, step := range steps {
		names = append(names, sharpNames[offset%12])
		offset += step
	}

	return names
}

// spellDegree attaches the accidental that bends a natural letter to the
// target pitch class.
func spellDegree(letter string, natural, target int) string {
	diff := (target - natural + 12) % 12

	switch diff {
	case 0:
		return letter
	case 1:
		return letter + "#"
	case 2:
		return letter + "##"
	case 11:
		return letter + "b"
	case 10:
		return letter + "bb"
	default:
		// Degenerate spelling; fall back to the plain class name.
		return sharpNames[target%12]
	}
}
