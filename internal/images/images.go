// Package images downloads page images to the local asset directory.
// Filenames are derived from the source URL so repeat syncs reuse the file.
package images

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// DefaultTimeout is the default HTTP request timeout for image downloads.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for image requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; NotionSync/1.0)"

// defaultExtension is used when the source URL carries no usable extension.
const defaultExtension = ".png"

// Error represents a failure while downloading an image.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image download error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("image download error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures a single download.
type Options struct {
	// IsCover marks the image as a page cover, which prefixes the stored
	// filename so covers are distinguishable from inline assets.
	IsCover bool
}

// Downloader fetches image bytes into Root.
type Downloader struct {
	Root      string
	UserAgent string
	Client    *http.Client
}

// NewDownloader creates a Downloader writing into root.
func NewDownloader(root string) *Downloader {
	return &Downloader{
		Root:      root,
		UserAgent: DefaultUserAgent,
		Client:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Download fetches rawURL and stores it under the downloader root, returning
// the local filename (no directory). An empty rawURL is a silent no-op and
// returns "". Files already on disk are not fetched again.
func (d *Downloader) Download(ctx context.Context, rawURL string, opts Options) (string, error) {
	if rawURL == "" {
		return "", nil
	}

	name := d.fileName(rawURL, opts.IsCover)
	dest := filepath.Join(d.Root, name)

	if _, err := os.Stat(dest); err == nil {
		return name, nil
	}

	if err := os.MkdirAll(d.Root, 0o755); err != nil {
		return "", &Error{URL: rawURL, Message: "failed to create image directory", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", d.UserAgent)

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	file, err := os.Create(dest)
	if err != nil {
		return "", &Error{URL: rawURL, Message: "failed to create file", Cause: err}
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		_ = os.Remove(dest)
		return "", &Error{URL: rawURL, Message: "failed to write file", Cause: err}
	}

	if err := file.Close(); err != nil {
		return "", &Error{URL: rawURL, Message: "failed to close file", Cause: err}
	}
	return name, nil
}

// fileName derives a stable local name from the source URL. Notion file
// URLs carry expiring signatures in the query string, so only the path
// contributes to the hash.
func (d *Downloader) fileName(rawURL string, cover bool) string {
	hashed := rawURL
	ext := defaultExtension

	if parsed, err := url.Parse(rawURL); err == nil {
		parsed.RawQuery = ""
		parsed.Fragment = ""
		hashed = parsed.String()
		if e := path.Ext(parsed.Path); e != "" {
			ext = e
		}
	}

	sum := sha1.Sum([]byte(hashed))
	short := hex.EncodeToString(sum[:])[:12]

	if cover {
		return "cover-" + short + ext
	}
	return short + ext
}
