package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	facetErrors "github.com/odvcencio/facet/pkg/errors"
	"github.com/odvcencio/facet/pkg/logging"
)

//go:generate mockgen -package=imagecache -destination=mock_fetcher_test.go github.com/odvcencio/facet/pkg/ui/imagecache Fetcher

// Fetcher retrieves the raw bytes for a key.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// MaxImageBytes bounds a single payload.
const MaxImageBytes = 32 << 20

// IsRemote reports whether key is fetched over the network.
func IsRemote(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}

// HTTPFetcher downloads http(s) URLs, waiting on Limiter before each request.
type HTTPFetcher struct {
	Client    *http.Client
	Limiter   *rate.Limiter
	UserAgent string
}

// NewHTTPFetcher allows ratePerSec requests per second with the given burst.
// A non-positive rate disables limiting.
func NewHTTPFetcher(timeout time.Duration, ratePerSec float64, burst int) *HTTPFetcher {
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &HTTPFetcher{
		Client:    &http.Client{Timeout: timeout},
		Limiter:   rate.NewLimiter(limit, max(burst, 1)),
		UserAgent: "facet",
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, facetErrors.Wrap(err, facetErrors.ErrCodeFetchHTTP, "rate limiter").WithContext("url", url)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeFetchHTTP, "invalid request").WithContext("url", url)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeFetchHTTP, "request failed").
			WithContext("url", url).
			WithRetryable(true)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, facetErrors.New(facetErrors.ErrCodeFetchHTTP, "bad status").
			WithContext("url", url).
			WithContext("status", resp.StatusCode).
			WithRetryable(resp.StatusCode >= 500)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeFetchRead, "failed to read response").WithContext("url", url)
	}
	return data, nil
}

// FileFetcher reads local paths, resolving relative ones against Root.
type FileFetcher struct {
	Root string
}

func (f FileFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	path := key
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, facetErrors.Wrap(err, facetErrors.ErrCodeFetchRead, "failed to read file").WithContext("path", path)
	}
	return data, nil
}

// Router sends http(s) keys to Remote and everything else to Local.
type Router struct {
	Remote Fetcher
	Local  Fetcher
}

func (r Router) Fetch(ctx context.Context, key string) ([]byte, error) {
	if IsRemote(key) {
		return r.Remote.Fetch(ctx, key)
	}
	return r.Local.Fetch(ctx, key)
}

// DiskCache stores remote payloads under Dir, named by the SHA-256 of the
// key, and serves them on later runs without touching the network. Local
// keys pass straight through.
type DiskCache struct {
	Dir  string
	Next Fetcher
	Log  *logging.Logger
}

// CachePath returns the file a key is stored under.
func (d DiskCache) CachePath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(d.Dir, hex.EncodeToString(sum[:])+".img")
}

func (d DiskCache) Fetch(ctx context.Context, key string) ([]byte, error) {
	if d.Dir == "" || !IsRemote(key) {
		return d.Next.Fetch(ctx, key)
	}
	path := d.CachePath(key)
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	data, err := d.Next.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := d.store(path, data); err != nil {
		logging.OrNop(d.Log).Warn("image cache write failed", zap.String("key", key), zap.Error(err))
	}
	return data, nil
}

func (d DiskCache) store(path string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeCacheWrite, "create cache dir").WithContext("dir", d.Dir)
	}
	tmp := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return facetErrors.Wrap(err, facetErrors.ErrCodeCacheWrite, "write cache file").WithContext("path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return facetErrors.Wrap(err, facetErrors.ErrCodeCacheWrite, "commit cache file").WithContext("path", path)
	}
	return nil
}

// FetcherConfig selects the default fetch chain.
type FetcherConfig struct {
	CacheDir    string
	AssetRoot   string
	HTTPTimeout time.Duration
	RatePerSec  float64
	Burst       int
	Log         *logging.Logger
}

// NewFetcher builds the default chain: disk cache, then network for
// http(s) keys or the filesystem for everything else.
func NewFetcher(cfg FetcherConfig) Fetcher {
	return DiskCache{
		Dir: cfg.CacheDir,
		Next: Router{
			Remote: NewHTTPFetcher(cfg.HTTPTimeout, cfg.RatePerSec, cfg.Burst),
			Local:  FileFetcher{Root: cfg.AssetRoot},
		},
		Log: logging.OrNop(cfg.Log).With(logging.ComponentImageCache),
	}
}
