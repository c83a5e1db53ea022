package datasets_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-tsmining/tsmp/datasets"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDatasetZip assembles an in-memory UCR-style archive for one dataset.
func buildDatasetZip(t *testing.T, name, train, test string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for file, content := range map[string]string{
		name + "_TRAIN.txt": train,
		name + "_TEST.txt":  test,
	} {
		f, err := w.Create(file)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func newArchiveServer(t *testing.T, name string, payload []byte, hits *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Downloads/"+name+".zip" {
			http.NotFound(w, r)
			return
		}
		*hits++
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)

	return srv
}

// TestLoadDataset_DownloadExtractParse is the end-to-end path: download the
// zip, extract into the cache, parse both splits.
func TestLoadDataset_DownloadExtractParse(t *testing.T) {
	payload := buildDatasetZip(t, "Toy",
		"1 0 1 3 2\n2 9 1 14 15\n",
		"1 1 2 2 10\n")
	hits := 0
	srv := newArchiveServer(t, "Toy", payload, &hits)

	opts := datasets.DefaultOptions()
	opts.BaseURL = srv.URL
	opts.CacheDir = t.TempDir()
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	set, err := a.LoadDataset(context.Background(), "Toy")
	require.NoError(t, err)

	n, sz, d := set.XTrain.Shape()
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, sz)
	assert.Equal(t, 1, d)
	assert.Equal(t, []string{"1", "2"}, set.YTrain)

	n, _, _ = set.XTest.Shape()
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"1"}, set.YTest)
	assert.Equal(t, 1, hits, "exactly one download")
}

// TestLoadDataset_CacheReuse: a second load with caching enabled must not
// hit the network; with caching disabled it must re-download.
func TestLoadDataset_CacheReuse(t *testing.T) {
	payload := buildDatasetZip(t, "Toy", "1 0 1\n", "1 2 3\n")
	hits := 0
	srv := newArchiveServer(t, "Toy", payload, &hits)

	opts := datasets.DefaultOptions()
	opts.BaseURL = srv.URL
	opts.CacheDir = t.TempDir()
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	_, err = a.LoadDataset(context.Background(), "Toy")
	require.NoError(t, err)
	_, err = a.LoadDataset(context.Background(), "Toy")
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "cached copy must be reused")

	opts.UseCache = false
	b, err := datasets.NewArchive(opts)
	require.NoError(t, err)
	_, err = b.LoadDataset(context.Background(), "Toy")
	require.NoError(t, err)
	assert.Equal(t, 2, hits, "UseCache=false must refresh")
}

// TestLoadDataset_RenamedDataset: the documented name is corrected to the
// archive-site file name before the request is built.
func TestLoadDataset_RenamedDataset(t *testing.T) {
	payload := buildDatasetZip(t, "StarLightCurves", "1 0 1\n", "1 2 3\n")
	hits := 0
	srv := newArchiveServer(t, "StarLightCurves", payload, &hits)

	opts := datasets.DefaultOptions()
	opts.BaseURL = srv.URL
	opts.CacheDir = t.TempDir()
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	_, err = a.LoadDataset(context.Background(), "StarlightCurves")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

// TestLoadDataset_NotFound maps a 404 to ErrDatasetUnavailable.
func TestLoadDataset_NotFound(t *testing.T) {
	hits := 0
	srv := newArchiveServer(t, "Known", nil, &hits)

	opts := datasets.DefaultOptions()
	opts.BaseURL = srv.URL
	opts.CacheDir = t.TempDir()
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	_, err = a.LoadDataset(context.Background(), "Missing")
	assert.ErrorIs(t, err, datasets.ErrDatasetUnavailable)
}

// TestLoadDataset_CorruptArchive maps zip failures to ErrBadArchive.
func TestLoadDataset_CorruptArchive(t *testing.T) {
	hits := 0
	srv := newArchiveServer(t, "Toy", []byte("this is not a zip"), &hits)

	opts := datasets.DefaultOptions()
	opts.BaseURL = srv.URL
	opts.CacheDir = t.TempDir()
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	_, err = a.LoadDataset(context.Background(), "Toy")
	assert.ErrorIs(t, err, datasets.ErrBadArchive)
}

// TestLoadDataset_MissingSplit: an archive without both TXT splits errors.
func TestLoadDataset_MissingSplit(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("Toy_TRAIN.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("1 0 1\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	hits := 0
	srv := newArchiveServer(t, "Toy", buf.Bytes(), &hits)

	opts := datasets.DefaultOptions()
	opts.BaseURL = srv.URL
	opts.CacheDir = t.TempDir()
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	_, err = a.LoadDataset(context.Background(), "Toy")
	assert.ErrorIs(t, err, datasets.ErrMissingSplit)
}

// TestListCachedDatasets lists extracted directories only, sorted, and
// skips the archive's descriptions folder.
func TestListCachedDatasets(t *testing.T) {
	cache := t.TempDir()
	for _, dir := range []string{"GunPoint", "Beef", "Data Descriptions"} {
		require.NoError(t, os.MkdirAll(filepath.Join(cache, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(cache, "stray.zip"), []byte("x"), 0o644))

	opts := datasets.DefaultOptions()
	opts.CacheDir = cache
	a, err := datasets.NewArchive(opts)
	require.NoError(t, err)

	names, err := a.ListCachedDatasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Beef", "GunPoint"}, names)
}
