// Package adapter holds the side-effecting collaborators of the engine:
// MIDI file output and logger construction.
package adapter

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	m "github.com/ology/basswalk/internal/model"
)

const (
	bassChannel uint8 = 1  // standard GM bass channel
	bassProgram uint8 = 33 // Electric Bass (finger), GM program 34, 0-indexed

	ticksPerQuarter = 480
	defaultTempo    = 120
	noteVelocity    = 80
)

// PhraseWriter renders generated bars to a MIDI destination.
type PhraseWriter interface {
	Write(w io.Writer, bars []m.Bar) error
	WriteFile(path string, bars []m.Bar) error
}

type smfWriter struct{}

// NewSMFWriter constructs a PhraseWriter emitting a single-track
// standard MIDI file, one quarter note per pitch.
func NewSMFWriter() PhraseWriter {
	return &smfWriter{}
}

func (sw *smfWriter) Write(w io.Writer, bars []m.Bar) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track

	tr.Add(0, smf.MetaTrackSequenceName("basswalk"))
	tr.Add(0, smf.MetaTempo(defaultTempo))
	tr.Add(0, smf.Message(midi.ProgramChange(bassChannel, bassProgram)))

	for _, bar := range bars {
		for _, note := range bar.Notes {
			if note < 0 || note > 127 {
				return fmt.Errorf("pitch %d out of MIDI range in chord %s", note, bar.Chord)
			}

			key := uint8(note)
			tr.Add(0, smf.Message(midi.NoteOn(bassChannel, key, noteVelocity)))
			tr.Add(ticksPerQuarter, smf.Message(midi.NoteOff(bassChannel, key)))
		}
	}

	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("failed to add bass track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write SMF: %w", err)
	}

	return nil
}

func (sw *smfWriter) WriteFile(path string, bars []m.Bar) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return sw.Write(f, bars)
}
