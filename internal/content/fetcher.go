package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound covers every non-success retrieval outcome; callers treat
// missing and failed documents identically.
var ErrNotFound = errors.New("document not found")

// Fetcher retrieves raw markdown text for a document path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FileFetcher serves documents from a directory on disk.
type FileFetcher struct {
	Dir string
}

// Fetch reads the document at the given slash-separated relative path.
// Paths escaping the docs directory are rejected as not found.
func (f *FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(f.Dir, clean))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return data, nil
}

// HTTPFetcher retrieves documents from a remote static file host.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// Fetch requests BaseURL/path and expects UTF-8 markdown text. Any
// non-success response is treated as not found.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimSuffix(f.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", path, resp.StatusCode, ErrNotFound)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return data, nil
}
