package theory

import (
	"testing"

	m "github.com/ology/basswalk/internal/model"
)

func TestNoteToMIDI(t *testing.T) {
	t.Run("C2 is MIDI 36", func(t *testing.T) {
		p, ok := NoteToMIDI("C", 2)
		if !ok {
			t.Fatal("expected C to resolve")
		}
		if p != 36 {
			t.Fatalf("expected 36, got %d", p)
		}
	})

	t.Run("E2 is MIDI 40", func(t *testing.T) {
		p, ok := NoteToMIDI("E", 2)
		if !ok || p != 40 {
			t.Fatalf("expected 40, got %d (ok=%v)", p, ok)
		}
	})

	t.Run("enharmonic spellings share a pitch", func(t *testing.T) {
		sharp, _ := NoteToMIDI("F#", 3)
		flat, _ := NoteToMIDI("Gb", 3)
		if sharp != flat {
			t.Fatalf("F#3 (%d) and Gb3 (%d) should be equal", sharp, flat)
		}
		if sharp != 54 {
			t.Fatalf("expected 54, got %d", sharp)
		}
	})

	t.Run("unknown spelling fails", func(t *testing.T) {
		if _, ok := NoteToMIDI("H", 2); ok {
			t.Fatal("H should not resolve")
		}
	})
}

func TestPitchName(t *testing.T) {
	cases := map[m.Pitch]string{
		36: "C2",
		40: "E2",
		43: "G2",
		46: "A#2",
		60: "C4",
	}

	for pitch, want := range cases {
		if got := PitchName(pitch); got != want {
			t.Errorf("PitchName(%d) = %q, want %q", pitch, got, want)
		}
	}
}

func TestRespell(t *testing.T) {
	t.Run("sharp becomes flat", func(t *testing.T) {
		if got := Respell("G#"); got != "Ab" {
			t.Fatalf("expected Ab, got %q", got)
		}
	})

	t.Run("flat becomes sharp", func(t *testing.T) {
		if got := Respell("Eb"); got != "D#" {
			t.Fatalf("expected D#, got %q", got)
		}
	})

	t.Run("natural is unchanged", func(t *testing.T) {
		if got := Respell("F"); got != "F" {
			t.Fatalf("expected F, got %q", got)
		}
	})

	t.Run("unknown spelling is passed through", func(t *testing.T) {
		if got := Respell("X#"); got != "X#" {
			t.Fatalf("expected X#, got %q", got)
		}
	})
}

func TestIsPitchClass(t *testing.T) {
	for _, name := range []string{"C", "F#", "Bb", "E#", "Cb"} {
		if !IsPitchClass(name) {
			t.Errorf("%q should be a pitch class", name)
		}
	}

	for _, name := range []string{"", "H", "c", "C##", "Bbb"} {
		if IsPitchClass(name) {
			t.Errorf("%q should not be a pitch class", name)
		}
	}
}
