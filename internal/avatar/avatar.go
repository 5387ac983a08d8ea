// Package avatar caches account avatar images on disk so the dashboard
// does not refetch them on every refresh cycle.
package avatar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	fileMode = 0o600
	dirMode  = 0o750

	fetchTimeout = 10 * time.Second
)

// Cache stores downloaded avatars under a single directory, one file per
// source URL.
type Cache struct {
	dir   string
	httpc *http.Client
}

// NewCache creates a cache rooted at dir.
func NewCache(dir string) *Cache {
	return &Cache{
		dir:   dir,
		httpc: &http.Client{Timeout: fetchTimeout},
	}
}

// Path returns the cache file path for a URL without fetching.
func (c *Cache) Path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:16])+".img")
}

// Fetch returns the local path of the avatar at url, downloading it on
// first use. An already-cached file is returned without a network call.
func (c *Cache) Fetch(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty avatar url")
	}

	path := c.Path(url)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(c.dir, dirMode); err != nil {
		return "", fmt.Errorf("creating avatar cache: %w", err)
	}

	resp, err := c.httpc.Get(url) //nolint:noctx // best-effort side cache, bounded by client timeout
	if err != nil {
		return "", fmt.Errorf("fetching avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching avatar: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading avatar: %w", err)
	}

	if err := os.WriteFile(path, data, fileMode); err != nil {
		return "", fmt.Errorf("writing avatar: %w", err)
	}
	return path, nil
}
