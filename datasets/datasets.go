package datasets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-tsmining/tsmp/timeseries"
)

var (
	// ErrDatasetUnavailable indicates the archive could not be downloaded
	// (network failure or a non-OK response from the archive site).
	ErrDatasetUnavailable = errors.New("datasets: dataset could not be downloaded")

	// ErrBadArchive indicates a corrupted or unreadable zip archive.
	ErrBadArchive = errors.New("datasets: corrupted or missing zip archive")

	// ErrMissingSplit indicates an extracted dataset that does not provide
	// both TXT train and test files.
	ErrMissingSplit = errors.New("datasets: dataset does not provide TXT train/test files")

	// ErrBadRecord indicates a TXT line that could not be parsed.
	ErrBadRecord = errors.New("datasets: malformed record")
)

const defaultBaseURL = "https://www.timeseriesclassification.com"

// ignoreList holds cache-directory entries that are not datasets.
var ignoreList = map[string]bool{"Data Descriptions": true}

// renames maps documented dataset names to the file names actually used by
// the archive site, recovering from its known typos.
var renames = map[string]string{
	"AtrialFibrillation":         "AtrialFibrilation",
	"CinCECGtorso":               "CinCECGTorso",
	"MixedShapes":                "MixedShapesRegularTrain",
	"NonInvasiveFetalECGThorax1": "NonInvasiveFatalECGThorax1",
	"NonInvasiveFetalECGThorax2": "NonInvasiveFatalECGThorax2",
	"StarlightCurves":            "StarLightCurves",
}

func canonicalName(name string) string {
	if fixed, ok := renames[name]; ok {
		return fixed
	}

	return name
}

// Options configures an Archive.
//
// Fields:
//   - BaseURL  — archive site root; empty selects the UCR/UEA site.
//   - CacheDir — extraction cache; empty selects ~/.tsmp/datasets/UCR_UEA.
//   - UseCache — reuse a previously extracted dataset when complete.
//   - Client   — HTTP client; nil selects http.DefaultClient.
type Options struct {
	BaseURL  string
	CacheDir string
	UseCache bool
	Client   *http.Client
}

// DefaultOptions returns the documented defaults with caching enabled.
func DefaultOptions() Options {
	return Options{BaseURL: defaultBaseURL, UseCache: true}
}

// Archive provides cached access to UCR/UEA datasets.
type Archive struct {
	baseURL  string
	cacheDir string
	useCache bool
	client   *http.Client
}

// NewArchive resolves opts and ensures the cache directory exists.
func NewArchive(opts Options) (*Archive, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("datasets: resolve cache dir: %w", err)
		}
		opts.CacheDir = filepath.Join(home, ".tsmp", "datasets", "UCR_UEA")
	}
	if err := os.MkdirAll(opts.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("datasets: create cache dir: %w", err)
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}

	return &Archive{
		baseURL:  opts.BaseURL,
		cacheDir: opts.CacheDir,
		useCache: opts.UseCache,
		client:   opts.Client,
	}, nil
}

// Set is one loaded dataset: train and test series with their class labels.
type Set struct {
	XTrain *timeseries.Dataset
	YTrain []string
	XTest  *timeseries.Dataset
	YTest  []string
}

// LoadDataset loads a dataset by its documented name, downloading and
// extracting it first unless a complete cached copy exists and caching is
// enabled. Ragged datasets come back NaN-padded to the longest series.
func (a *Archive) LoadDataset(ctx context.Context, name string) (*Set, error) {
	name = canonicalName(name)
	dir := filepath.Join(a.cacheDir, name)

	if !a.useCache || !hasSplits(dir, name) {
		// Clear any partial extraction before re-downloading.
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("datasets: clear cache entry: %w", err)
		}
		url := fmt.Sprintf("%s/Downloads/%s.zip", a.baseURL, name)
		if err := a.fetchArchive(ctx, url, dir); err != nil {
			return nil, err
		}
		if !hasSplits(dir, name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSplit, name)
		}
	}

	xTrain, yTrain, err := loadTXT(filepath.Join(dir, name+"_TRAIN.txt"))
	if err != nil {
		return nil, err
	}
	xTest, yTest, err := loadTXT(filepath.Join(dir, name+"_TEST.txt"))
	if err != nil {
		return nil, err
	}

	return &Set{XTrain: xTrain, YTrain: yTrain, XTest: xTest, YTest: yTest}, nil
}

// ListCachedDatasets returns the names of datasets available in the cache,
// sorted ascending.
func (a *Archive) ListCachedDatasets() ([]string, error) {
	entries, err := os.ReadDir(a.cacheDir)
	if err != nil {
		return nil, fmt.Errorf("datasets: read cache dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !ignoreList[e.Name()] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func hasSplits(dir, name string) bool {
	for _, split := range []string{"_TRAIN.txt", "_TEST.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name+split)); err != nil {
			return false
		}
	}

	return true
}
