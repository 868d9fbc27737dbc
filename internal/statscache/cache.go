// Package statscache is a thread-safe two-tier cache (in-memory + filesystem)
// for enumeration results. Enumerating every cookjob is cheap for small
// catalogs but grows combinatorially, so results are memoized per inventory.
//
// Every entry carries the catalog order hash it was computed against. A disk
// entry whose hash no longer matches the live catalog is stale and is
// discarded on read, so catalog edits can never resurrect masks that decode
// to the wrong ingredients.
package statscache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// memTTL bounds how long a memory entry outlives its last Put. Disk entries
// have no TTL; staleness is decided by the order hash instead.
const memTTL = 30 * time.Minute

// Cache implements domain.JobCache.
type Cache struct {
	mem       *gocache.Cache
	dir       string // filesystem cache directory (empty = no disk layer)
	orderHash string // live catalog's order hash, baked into every entry
	log       *logger.Logger
}

// New creates a cache bound to the given catalog order hash. When dir is
// non-empty entries are also persisted there, giving a warm start from
// previous runs.
func New(dir, orderHash string, log *logger.Logger) *Cache {
	c := &Cache{
		mem:       gocache.New(memTTL, 2*memTTL),
		dir:       dir,
		orderHash: orderHash,
		log:       log,
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("statscache: failed to create cache dir %s: %v", dir, err)
			c.dir = ""
		}
	}
	return c
}

// diskEntry is the on-disk shape of one cached enumeration.
type diskEntry struct {
	OrderHash string           `json:"order_hash"`
	Key       string           `json:"key"`
	Jobs      []domain.CookJob `json:"jobs"`
}

// Get returns the cached cookjobs for the key and true, or nil and false.
// It checks memory first, then falls back to disk.
func (c *Cache) Get(key string) ([]domain.CookJob, bool) {
	if v, ok := c.mem.Get(key); ok {
		jobs := v.([]domain.CookJob)
		c.log.Debug("statscache hit (mem): %s (%d jobs)", key, len(jobs))
		return jobs, true
	}

	if c.dir == "" {
		return nil, false
	}
	raw, err := os.ReadFile(c.diskPath(key))
	if err != nil {
		return nil, false
	}
	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.log.Warn("statscache: discarding unreadable entry for %s: %v", key, err)
		os.Remove(c.diskPath(key))
		return nil, false
	}
	if entry.OrderHash != c.orderHash {
		c.log.Debug("statscache: discarding stale entry for %s: %v", key, domain.ErrStaleCache)
		os.Remove(c.diskPath(key))
		return nil, false
	}

	// Promote to memory for faster subsequent hits.
	c.mem.Set(key, entry.Jobs, gocache.DefaultExpiration)
	c.log.Debug("statscache hit (disk): %s (%d jobs)", key, len(entry.Jobs))
	return entry.Jobs, true
}

// Put stores the cookjobs for the key in memory, and on disk when the disk
// layer is enabled.
func (c *Cache) Put(key string, jobs []domain.CookJob) {
	c.mem.Set(key, jobs, gocache.DefaultExpiration)

	if c.dir == "" {
		return
	}
	raw, err := json.Marshal(diskEntry{OrderHash: c.orderHash, Key: key, Jobs: jobs})
	if err != nil {
		c.log.Error("statscache: marshal failed for %s: %v", key, err)
		return
	}
	if err := os.WriteFile(c.diskPath(key), raw, 0o644); err != nil {
		c.log.Error("statscache: disk write failed for %s: %v", key, err)
	}
}

// Flush empties the memory tier. The disk tier is NOT cleared.
func (c *Cache) Flush() {
	c.mem.Flush()
}

// diskPath hashes the key so arbitrary key text maps to a safe file name.
func (c *Cache) diskPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:])+".json")
}

var _ domain.JobCache = (*Cache)(nil)
