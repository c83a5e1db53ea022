package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/go-tsmining/tsmp/timeseries"
)

// readSeriesCSV loads a CSV file with one univariate series per row.
// Rows may have different lengths; shorter ones are NaN padded downstream.
func readSeriesCSV(path string) (*timeseries.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	series := make([][]float64, 0, len(records))
	for line, record := range records {
		row := make([]float64, 0, len(record))
		for col, field := range record {
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d column %d: %w", path, line+1, col+1, err)
			}
			row = append(row, v)
		}
		if len(row) > 0 {
			series = append(series, row)
		}
	}

	return timeseries.FromSeries(series...)
}

// writeProfileCSV writes one profile per row, mirroring the input layout.
func writeProfileCSV(path string, profiles *timeseries.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	n, sz, _ := profiles.Shape()
	record := make([]string, sz)
	for i := 0; i < n; i++ {
		s, err := profiles.Series(i)
		if err != nil {
			return err
		}
		for t := 0; t < sz; t++ {
			record[t] = strconv.FormatFloat(s.At(t, 0), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
