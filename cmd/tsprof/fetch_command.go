package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-tsmining/tsmp/datasets"
	"github.com/go-tsmining/tsmp/timeseries"
)

func newFetchCommand() *cobra.Command {
	var (
		cacheDir string
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <dataset>",
		Short: "Download a UCR/UEA dataset into the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := datasets.DefaultOptions()
			opts.CacheDir = cacheDir
			opts.UseCache = !refresh
			archive, err := datasets.NewArchive(opts)
			if err != nil {
				return err
			}

			set, err := archive.LoadDataset(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Split", "Series", "Length", "Channels"},
				[][]string{
					splitRow("train", set.XTrain),
					splitRow("test", set.XTest),
				}, 1,
			))

			return nil
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Dataset cache directory (default ~/.tsmp/datasets/UCR_UEA)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-download even if a cached copy exists")

	return cmd
}

func splitRow(name string, ds *timeseries.Dataset) []string {
	n, sz, d := ds.Shape()

	return []string{name, strconv.Itoa(n), strconv.Itoa(sz), strconv.Itoa(d)}
}
