package content

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	cacheCapacity           = 10000
	cacheShards             = 10
	cacheEvictionPercentage = 10
)

// CachedSource memoises files and listings of another source for a fixed
// time to live. Failed fetches are not cached.
type CachedSource struct {
	source Source
	files  *sturdyc.Client[[]byte]
	lists  *sturdyc.Client[[]Entry]
}

var _ Source = (*CachedSource)(nil)

// NewCachedSource wraps source with a cache holding entries for ttl.
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source: source,
		files:  sturdyc.New[[]byte](cacheCapacity, cacheShards, ttl, cacheEvictionPercentage),
		lists:  sturdyc.New[[]Entry](cacheCapacity, cacheShards, ttl, cacheEvictionPercentage),
	}
}

// File returns the cached contents of path, fetching them on a miss.
func (c *CachedSource) File(ctx context.Context, path string) ([]byte, error) {
	return c.files.GetOrFetch(ctx, path, func(ctx context.Context) ([]byte, error) {
		return c.source.File(ctx, path)
	})
}

// List returns the cached listing of dir, fetching it on a miss.
func (c *CachedSource) List(ctx context.Context, dir string) ([]Entry, error) {
	return c.lists.GetOrFetch(ctx, dir, func(ctx context.Context) ([]Entry, error) {
		return c.source.List(ctx, dir)
	})
}

// Invalidate drops path from the file cache and its parent directory from
// the listing cache.
func (c *CachedSource) Invalidate(path string) {
	c.files.Delete(path)
	c.lists.Delete(parentDir(path))
}

func parentDir(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}

	return ""
}
