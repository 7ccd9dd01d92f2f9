package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ology/basswalk/internal/controller"
)

// chordsCmd represents the chords command.
var chordsCmd = newChordsCmd()

func newChordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chords",
		Short: "List known chord flavors",
		Long:  "List every chord flavor the generator understands, with its semitone offsets from the root.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller.DisplayChords(cmd.OutOrStdout())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(chordsCmd)
}
