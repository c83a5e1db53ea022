package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/go-tsmining/tsmp/matrixprofile"
	"github.com/go-tsmining/tsmp/timeseries"
)

func newPlotCommand() *cobra.Command {
	var (
		subsequenceLength int
		scale             bool
		seriesIndex       int
		output            string
	)

	cmd := &cobra.Command{
		Use:   "plot <csv>",
		Short: "Render one series and its matrix profile as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := readSeriesCSV(args[0])
			if err != nil {
				return err
			}
			if seriesIndex < 0 || seriesIndex >= ds.NumSeries() {
				return fmt.Errorf("series index %d out of range (have %d series)", seriesIndex, ds.NumSeries())
			}

			opts := matrixprofile.DefaultOptions()
			opts.SubsequenceLength = subsequenceLength
			opts.Scale = scale
			mp, err := matrixprofile.New(opts)
			if err != nil {
				return err
			}
			profiles, err := mp.FitTransform(ds)
			if err != nil {
				return err
			}

			series, err := ds.Series(seriesIndex)
			if err != nil {
				return err
			}
			profile, err := profiles.Series(seriesIndex)
			if err != nil {
				return err
			}

			if err := plotProfile(output, series, profile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plot written to %s\n", output)

			return nil
		},
	}

	cmd.Flags().IntVarP(&subsequenceLength, "subsequence-length", "m", 4, "Window length for subsequence comparisons")
	cmd.Flags().BoolVar(&scale, "scale", true, "Z-normalize each window before distance computation")
	cmd.Flags().IntVar(&seriesIndex, "series", 0, "Index of the series to plot")
	cmd.Flags().StringVarP(&output, "output", "o", "profile.png", "Output PNG path")

	return cmd
}

// plotProfile writes a PNG with the raw series (grey) and its matrix
// profile (red), the profile indexed by window start position.
func plotProfile(path string, series, profile timeseries.Series) error {
	p := plot.New()
	p.Title.Text = "Matrix profile"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "value / distance"

	raw := channelXYs(series, 0)
	rawLine, err := plotter.NewLine(raw)
	if err != nil {
		return err
	}
	rawLine.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	rawLine.Width = vg.Points(1)
	p.Add(rawLine)
	p.Legend.Add("series", rawLine)

	prof := channelXYs(profile, 0)
	profLine, err := plotter.NewLine(prof)
	if err != nil {
		return err
	}
	profLine.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	profLine.Width = vg.Points(1.5)
	p.Add(profLine)
	p.Legend.Add("profile", profLine)

	p.Add(plotter.NewGrid())

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}

// channelXYs converts channel c of a series into plottable points,
// dropping NaN and infinite entries.
func channelXYs(s timeseries.Series, c int) plotter.XYs {
	xys := make(plotter.XYs, 0, s.Length())
	for t := 0; t < s.Length(); t++ {
		v := s.At(t, c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(t), Y: v})
	}

	return xys
}
