package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-tsmining/tsmp/matrixprofile"
	"github.com/go-tsmining/tsmp/timeseries"
)

func newComputeCommand() *cobra.Command {
	var (
		subsequenceLength int
		implementation    string
		scale             bool
		output            string
	)

	cmd := &cobra.Command{
		Use:   "compute <csv>",
		Short: "Compute matrix profiles for the series in a CSV file",
		Long: "Reads one univariate series per CSV row, computes the matrix profile\n" +
			"of each, and prints a motif/discord summary. With --output the full\n" +
			"profiles are written as CSV, one row per input series.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			impl, err := matrixprofile.ParseImplementation(implementation)
			if err != nil {
				return err
			}
			ds, err := readSeriesCSV(args[0])
			if err != nil {
				return err
			}

			opts := matrixprofile.DefaultOptions()
			opts.SubsequenceLength = subsequenceLength
			opts.Implementation = impl
			opts.Scale = scale
			mp, err := matrixprofile.New(opts)
			if err != nil {
				return err
			}
			profiles, err := mp.FitTransform(ds)
			if err != nil {
				return err
			}

			rows, err := summaryRows(profiles)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Series", "Windows", "Motif @", "Motif dist", "Discord @", "Discord dist"},
				rows, 1,
			))

			if output != "" {
				if err := writeProfileCSV(output, profiles); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "profiles written to %s\n", output)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&subsequenceLength, "subsequence-length", "m", 4, "Window length for subsequence comparisons")
	cmd.Flags().StringVar(&implementation, "implementation", "", "Self-join backend: native, accelerated-cpu or accelerated-gpu")
	cmd.Flags().BoolVar(&scale, "scale", true, "Z-normalize each window before distance computation")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write full profiles to this CSV path")

	return cmd
}

// summaryRows reduces each profile to its motif (lowest finite value) and
// discord (highest finite value) positions.
func summaryRows(profiles *timeseries.Dataset) ([][]string, error) {
	n, sz, _ := profiles.Shape()
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := profiles.Series(i)
		if err != nil {
			return nil, err
		}

		motifIdx, discordIdx := -1, -1
		motif, discord := math.Inf(1), math.Inf(-1)
		for t := 0; t < sz; t++ {
			v := s.At(t, 0)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < motif {
				motif, motifIdx = v, t
			}
			if v > discord {
				discord, discordIdx = v, t
			}
		}

		row := []string{strconv.Itoa(i), strconv.Itoa(sz)}
		if motifIdx < 0 {
			// every window was masked or NaN: nothing finite to report
			row = append(row, "-", "-", "-", "-")
		} else {
			row = append(row,
				strconv.Itoa(motifIdx), strconv.FormatFloat(motif, 'f', 4, 64),
				strconv.Itoa(discordIdx), strconv.FormatFloat(discord, 'f', 4, 64),
			)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
