// Package catalog provides the ingredient catalog: a stable-ordered table
// of known and unknown ingredients with a bitmask coder over that order.
//
// The load order of the catalog is load-bearing. Bit positions, cache keys,
// and enumeration order all derive from it, so the order is surfaced as an
// explicit hash ([Store.OrderHash]) that every derived artifact carries.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"
	"sync"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.CatalogSource = (*Store)(nil)
	_ domain.CatalogWriter = (*Store)(nil)
)

// MaxIngredients is the coder's capacity; one bit per catalog entry.
const MaxIngredients = 64

// Store holds the catalog and persists solver writes back to disk.
// Reads are cheap and concurrent; the single write path (Resolve) takes the
// exclusive lock so no enumeration ever observes a half-updated entry.
type Store struct {
	mu      sync.RWMutex
	entries []domain.Ingredient
	index   map[string]int
	hash    string
	path    string // empty = in-memory only, nothing persisted
	log     *logger.Logger
}

// NewStore creates a catalog store over the given ingredients, in order.
// If path is non-empty, Resolve writes the full catalog back to that file.
func NewStore(ings []domain.Ingredient, path string, log *logger.Logger) (*Store, error) {
	if len(ings) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	if len(ings) > MaxIngredients {
		return nil, fmt.Errorf("catalog has %d ingredients, coder supports at most %d", len(ings), MaxIngredients)
	}

	s := &Store{
		entries: make([]domain.Ingredient, len(ings)),
		index:   make(map[string]int, len(ings)),
		path:    path,
		log:     log,
	}
	names := make([]string, len(ings))
	for i, ing := range ings {
		if ing.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if ing.Category == domain.CategoryNone {
			return nil, fmt.Errorf("ingredient %q has no category", ing.Name)
		}
		if _, dup := s.index[ing.Name]; dup {
			return nil, fmt.Errorf("duplicate ingredient %q", ing.Name)
		}
		s.entries[i] = ing
		s.index[ing.Name] = i
		names[i] = ing.Name
	}

	sum := sha256.Sum256([]byte(strings.Join(names, "\n")))
	s.hash = hex.EncodeToString(sum[:])

	log.Debug("catalog ready: %d ingredients, order hash %s", len(ings), s.hash[:12])
	return s, nil
}

// All returns a copy of every ingredient in catalog order.
func (s *Store) All() []domain.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ingredient, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns an ingredient by name.
func (s *Store) Get(name string) (domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return domain.Ingredient{}, fmt.Errorf("%q: %w", name, domain.ErrUnknownIngredient)
	}
	return s.entries[i], nil
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// OrderHash returns the hex sha256 of the ordered ingredient name list.
// Any artifact keyed on bit positions must store and re-check this value.
func (s *Store) OrderHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hash
}

// Bit returns the one-hot bitmask for a single ingredient.
func (s *Store) Bit(name string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, domain.ErrUnknownIngredient)
	}
	return 1 << uint(i), nil
}

// MaskOf returns the combined bitmask for a set of ingredient names.
func (s *Store) MaskOf(names ...string) (uint64, error) {
	var mask uint64
	for _, name := range names {
		bit, err := s.Bit(name)
		if err != nil {
			return 0, err
		}
		mask |= bit
	}
	return mask, nil
}

// Names expands a bitmask into ingredient names in catalog order.
func (s *Store) Names(mask uint64) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, bits.OnesCount64(mask))
	for i := range s.entries {
		if mask&(1<<uint(i)) != 0 {
			out = append(out, s.entries[i].Name)
		}
	}
	return out
}

// Contains reports whether the mask includes the named ingredient.
func (s *Store) Contains(mask uint64, name string) bool {
	bit, err := s.Bit(name)
	if err != nil {
		return false
	}
	return mask&bit != 0
}

// Resolve writes a derived stat triple for an ingredient and marks it
// solved. This is the only mutation path into the catalog. Re-resolving with
// identical stats is a no-op; differing stats overwrite the previous values.
func (s *Store) Resolve(name string, stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, domain.ErrUnknownIngredient)
	}

	prev := s.entries[i]
	if prev.Solved && prev.Stats == stats {
		s.log.Debug("resolve %s: already solved with identical stats", name)
		return nil
	}
	if prev.Solved {
		s.log.Info("overriding %s: %+v -> %+v", name, prev.Stats, stats)
	}

	s.entries[i].Stats = stats
	s.entries[i].Solved = true

	if s.path != "" {
		if err := s.save(); err != nil {
			// Roll back so memory never diverges from what the caller
			// believes was persisted.
			s.entries[i] = prev
			return fmt.Errorf("persisting catalog: %w", err)
		}
	}

	s.log.Info("solved %s: hunger=%d stress=%d sell=%d", name, stats.Hunger, stats.Stress, stats.Sell)
	return nil
}

// Unsolved returns the names of every unsolved ingredient in the given
// mask, in catalog order. A zero mask checks the whole catalog.
func (s *Store) Unsolved(mask uint64) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for i, ing := range s.entries {
		if mask != 0 && mask&(1<<uint(i)) == 0 {
			continue
		}
		if !ing.Solved {
			out = append(out, ing.Name)
		}
	}
	return out
}
