package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ology/basswalk/internal/controller"
)

// scalesCmd represents the scales command.
var scalesCmd = newScalesCmd()

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List known scales",
		Long:  "List every scale the generator understands, with its step pattern and degree names in C.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller.DisplayScales(cmd.OutOrStdout())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(scalesCmd)
}
