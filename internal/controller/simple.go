package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/ology/basswalk/internal/model"
	"github.com/ology/basswalk/internal/theory"
)

// SimpleUI implements UI using cobra Command's output and tablewriter.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayProgression prints one table row per bar.
func (s *SimpleUI) DisplayProgression(bars []m.Bar) error {
	if len(bars) == 0 {
		s.printf("No bars generated\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Bar", "Chord", "MIDI", "Notes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	total := 0

	for i, bar := range bars {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			bar.Chord,
			formatMIDI(bar.Notes),
			formatNames(bar.Notes),
		})

		total += len(bar.Notes)
	}

	table.SetFooter([]string{"", fmt.Sprintf("%d bars", len(bars)), fmt.Sprintf("%d notes", total), ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// DisplayChords prints the chord-flavor table.
func DisplayChords(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Flavor", "Semitones", "Example"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, flavor := range theory.Flavors() {
		tones, _ := theory.ChordTones(flavor)
		table.Append([]string{
			displayFlavor(flavor),
			formatInts(tones),
			"C" + flavor,
		})
	}

	table.Render()
}

// DisplayScales prints the scale table with degree names in C.
func DisplayScales(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scale", "Steps", "Degrees in C"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, name := range theory.ScaleNames() {
		steps, _ := theory.ScaleIntervals(name)
		degrees, _ := theory.DegreeNames("C", name)
		table.Append([]string{
			name,
			formatInts(steps),
			strings.Join(degrees, " "),
		})
	}

	table.Render()
}

func displayFlavor(flavor string) string {
	if flavor == "" {
		return "(major)"
	}

	return flavor
}

func formatMIDI(notes m.Phrase) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, fmt.Sprintf("%d", n))
	}

	return strings.Join(parts, " ")
}

func formatNames(notes m.Phrase) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, theory.PitchName(n))
	}

	return strings.Join(parts, " ")
}

func formatInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}

	return strings.Join(parts, " ")
}
