package datasets

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-tsmining/tsmp/timeseries"
)

// loadTXT parses a UCR TXT split: one series per line, the class label in
// the first column and the univariate observations in the remaining ones.
// Columns are separated by whitespace or commas. Ragged series are padded
// with NaN by the dataset constructor.
func loadTXT(path string) (*timeseries.Dataset, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("datasets: open split: %w", err)
	}
	defer f.Close()

	var (
		labels []string
		rows   [][]float64
	)
	sc := bufio.NewScanner(f)
	// Long series produce long lines; the default 64KiB cap is not enough.
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%w: %s line %d: need a label and at least one value", ErrBadRecord, path, lineNo)
		}

		labels = append(labels, fields[0])
		values := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s line %d column %d: %v", ErrBadRecord, path, lineNo, i+2, err)
			}
			values[i] = v
		}
		rows = append(rows, values)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("datasets: read split: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s: empty split", ErrBadRecord, path)
	}

	ds, err := timeseries.FromSeries(rows...)
	if err != nil {
		return nil, nil, err
	}

	return ds, labels, nil
}
