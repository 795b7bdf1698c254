package docs

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheEnvVar   = "TEMPLEOPS_CACHE_DIR"
	cacheSubdir   = "templeops/docs"
	cacheTTL      = 12 * time.Hour
	fetchTimeout  = 60 * time.Second
	maxDocBytes   = 50 << 20
	partialSuffix = ".part"
	metaSuffix    = ".meta"
)

// Cache stores downloaded documents on disk and revalidates them with
// conditional requests once they are older than the TTL.
type Cache struct {
	dir    string
	client *http.Client
}

type cacheMeta struct {
	URL          string    `json:"url"`
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"lastModified,omitempty"`
	CachedAt     time.Time `json:"cachedAt"`
	Size         int64     `json:"size"`
}

// NewCache returns a cache rooted at dir. An empty dir uses
// $TEMPLEOPS_CACHE_DIR, then the XDG cache home.
func NewCache(dir string, client *http.Client) (*Cache, error) {
	if dir == "" {
		dir = os.Getenv(cacheEnvVar)
	}
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, cacheSubdir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Cache{dir: dir, client: client}, nil
}

// Fetch returns a local path for url, downloading it when the cached copy is
// missing or stale. A stale copy is still served if revalidation fails.
func (c *Cache) Fetch(ctx context.Context, url string) (string, error) {
	docPath, metaPath := c.paths(url)
	info, statErr := os.Stat(docPath)
	if statErr == nil && info.Size() > 0 && time.Since(info.ModTime()) < cacheTTL {
		return docPath, nil
	}

	var meta cacheMeta
	if statErr == nil && info.Size() > 0 {
		meta, _ = readMeta(metaPath)
	}
	err := c.download(ctx, url, docPath, metaPath, meta)
	if err == nil {
		return docPath, nil
	}
	if statErr == nil && info.Size() > 0 {
		return docPath, nil
	}
	return "", err
}

func (c *Cache) download(ctx context.Context, url, docPath, metaPath string, meta cacheMeta) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid document url: %w", err)
	}
	if meta.ETag != "" {
		req.Header.Set("If-None-Match", meta.ETag)
	}
	if meta.LastModified != "" {
		req.Header.Set("If-Modified-Since", meta.LastModified)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("document download failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotModified:
		now := time.Now()
		meta.CachedAt = now.UTC()
		_ = os.Chtimes(docPath, now, now)
		return writeMeta(metaPath, meta)
	case http.StatusOK:
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("document download failed: %s (%s)", resp.Status, body)
	}

	partial := docPath + partialSuffix
	file, err := os.Create(partial)
	if err != nil {
		return err
	}
	n, err := io.Copy(file, io.LimitReader(resp.Body, maxDocBytes))
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(partial)
		return fmt.Errorf("document download failed: %w", err)
	}
	if err := os.Rename(partial, docPath); err != nil {
		return err
	}
	return writeMeta(metaPath, cacheMeta{
		URL:          url,
		ETag:         resp.Header.Get("Etag"),
		LastModified: resp.Header.Get("Last-Modified"),
		CachedAt:     time.Now().UTC(),
		Size:         n,
	})
}

func (c *Cache) paths(url string) (string, string) {
	sum := sha1.Sum([]byte(url))
	key := hex.EncodeToString(sum[:])
	return filepath.Join(c.dir, key+".pdf"), filepath.Join(c.dir, key+metaSuffix)
}

func readMeta(path string) (cacheMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cacheMeta{}, err
	}
	var meta cacheMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return cacheMeta{}, err
	}
	return meta, nil
}

func writeMeta(path string, meta cacheMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
