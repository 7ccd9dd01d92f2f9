// Package cmd provides the root command and CLI setup for basswalk.
package cmd

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ology/basswalk/internal/adapter"
	"github.com/ology/basswalk/internal/controller"
	"github.com/ology/basswalk/internal/domain"
	m "github.com/ology/basswalk/internal/model"
)

var phraseWriter adapter.PhraseWriter

// generatorFactory builds the engine for a run; tests swap it out.
var generatorFactory = func(cfg domain.Config, seed int64) domain.Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return domain.NewGenerator(cfg, rand.New(rand.NewSource(seed)), adapter.NewLogger(cfg.Verbose))
}

func init() {
	phraseWriter = adapter.NewSMFWriter()
}

var notesFlag int
var guitarFlag bool
var modalFlag bool
var keyFlag string
var octaveFlag int
var intervalsFlag []int
var scaleFlag string
var tonicFlag bool
var noChordTonesFlag bool
var degreesFlag []int
var seedFlag int64
var outFlag string
var verboseFlag bool
var plainFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basswalk [chords...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Generate walking basslines from chord symbols",
		Long: `Basswalk generates randomized, musically plausible walking basslines
from a chord progression. Each bar walks a pool of scale and chord
tones with constrained random steps, and the last note of each bar
anticipates the chord that follows.

Examples:
  basswalk C7 F7 G7
  basswalk -n 8 --guitar --tonic Dm7 G7 CM7
  basswalk --modal --key C Dm7 G7 --out walk.mid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			gen := generatorFactory(cfg, seedFlag)

			chords := args
			if len(chords) == 0 {
				chords = []string{"C"}
			}

			bars, err := gen.Progression(chords, notesFlag)
			if err != nil {
				return err
			}

			if outFlag != "" {
				if err := phraseWriter.WriteFile(outFlag, bars); err != nil {
					return err
				}

				cmd.Printf("Wrote %s\n", outFlag)
			}

			reroll := func(i int) (m.Bar, error) {
				next := ""
				if i+1 < len(chords) {
					next = chords[i+1]
				}

				notes, err := gen.Generate(chords[i], notesFlag, next)
				if err != nil {
					return m.Bar{}, err
				}

				return m.Bar{Chord: chords[i], Notes: notes}, nil
			}

			useTTY := !plainFlag && controller.IsTTY(os.Stdout)
			ui := controller.NewUI(cmd, useTTY, reroll)

			return ui.DisplayProgression(bars)
		},
	}

	cmd.Flags().IntVarP(&notesFlag, "notes", "n", 4, "notes to generate per bar")
	cmd.Flags().BoolVarP(&guitarFlag, "guitar", "g", false, "transpose pitches below E2 up an octave")
	cmd.Flags().BoolVar(&modalFlag, "modal", false, "select scales modally, keyed to --key")
	cmd.Flags().StringVarP(&keyFlag, "key", "k", "C", "modal key center")
	cmd.Flags().IntVarP(&octaveFlag, "octave", "o", 2, "octave for pitch derivation")
	cmd.Flags().IntSliceVarP(&intervalsFlag, "intervals", "i", nil, "allowed walk steps in semitones")
	cmd.Flags().StringVar(&scaleFlag, "scale", "majmin", "scale selector preset (majmin, pentatonic, chromatic, none)")
	cmd.Flags().BoolVarP(&tonicFlag, "tonic", "t", false, "bias the first note of each bar to I, III or V")
	cmd.Flags().BoolVar(&noChordTonesFlag, "no-chord-tones", false, "leave chord tones out of the candidate pool")
	cmd.Flags().IntSliceVar(&degreesFlag, "degrees", nil, "restrict pool to these 0-based scale degrees")
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&outFlag, "out", "", "write the progression to a MIDI file")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log pool construction and overrides")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "force plain table output instead of the TUI")

	return cmd
}

// buildConfig maps the root command's flags onto engine options.
func buildConfig() (domain.Config, error) {
	selector, ok := domain.SelectorPreset(scaleFlag)
	if !ok {
		return domain.Config{}, m.ValidationError{Field: "scale", Reason: "unknown preset " + scaleFlag}
	}

	opts := []domain.Option{
		domain.WithKeyCenter(keyFlag),
		domain.WithOctave(octaveFlag),
		domain.WithScaleSelector(selector),
	}

	if guitarFlag {
		opts = append(opts, domain.WithGuitar())
	}

	if modalFlag {
		opts = append(opts, domain.WithModal())
	}

	if tonicFlag {
		opts = append(opts, domain.WithTonicBias())
	}

	if noChordTonesFlag {
		opts = append(opts, domain.WithoutChordTones())
	}

	if len(intervalsFlag) > 0 {
		opts = append(opts, domain.WithIntervals(intervalsFlag...))
	}

	if len(degreesFlag) > 0 {
		opts = append(opts, domain.WithDegrees(degreesFlag...))
	}

	if verboseFlag {
		opts = append(opts, domain.WithVerbose())
	}

	return domain.NewConfig(opts...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
