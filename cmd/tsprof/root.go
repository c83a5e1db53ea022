package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsprof",
		Short: "Matrix Profile toolkit for time series",
		Long: "tsprof computes Matrix Profiles, the per-subsequence nearest-neighbor\n" +
			"distances, for batches of time series, fetches UCR/UEA datasets and\n" +
			"renders profile plots.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newComputeCommand())
	rootCmd.AddCommand(newPlotCommand())
	rootCmd.AddCommand(newFetchCommand())

	return rootCmd
}
