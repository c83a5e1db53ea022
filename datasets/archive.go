package datasets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zip"
)

// fetchArchive downloads url into a temporary cache file and extracts it
// under target. The download file is keyed by the xxHash64 of the URL so
// concurrent fetches of different datasets never collide, and is removed
// once extraction finishes.
func (a *Archive) fetchArchive(ctx context.Context, url, target string) error {
	tmp := filepath.Join(a.cacheDir, fmt.Sprintf("%016x.zip", xxhash.Sum64String(url)))
	if err := a.download(ctx, url, tmp); err != nil {
		return err
	}
	defer os.Remove(tmp)

	return extractZip(tmp, target)
}

func (a *Archive) download(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("datasets: build request: %w", err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: %s", ErrDatasetUnavailable, url, resp.Status)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("datasets: create download file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("%w: %s: %v", ErrDatasetUnavailable, url, err)
	}

	return f.Close()
}

// extractZip unpacks the archive at path into target, rejecting entries
// whose names would escape the target directory.
func extractZip(path, target string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	defer r.Close()

	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("datasets: create target dir: %w", err)
	}
	for _, f := range r.File {
		rel := filepath.Clean(filepath.FromSlash(f.Name))
		if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			return fmt.Errorf("%w: unsafe entry name %q", ErrBadArchive, f.Name)
		}
		dst := filepath.Join(target, rel)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return fmt.Errorf("datasets: extract dir: %w", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("datasets: extract dir: %w", err)
		}
		if err := extractFile(f, dst); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(f *zip.File, dst string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	defer rc.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("datasets: extract file: %w", err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	return out.Close()
}
