// Package inventory tracks which catalog ingredients the player is carrying
// and which of those are surplus. Both sets are bitmasks over the catalog
// order, persisted to a small state file between sessions.
package inventory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Book holds the carried and surplus ingredient sets.
type Book struct {
	mu   sync.Mutex
	cat  domain.CatalogSource
	log  *logger.Logger
	path string

	have    uint64
	surplus uint64
}

// New creates a book over the catalog. When path is non-empty the previous
// session's state is loaded from it and every mutation is written back.
func New(cat domain.CatalogSource, path string, log *logger.Logger) (*Book, error) {
	b := &Book{cat: cat, path: path, log: log}
	if path != "" {
		if err := b.load(); err != nil {
			return nil, fmt.Errorf("load inventory state: %w", err)
		}
	}
	return b, nil
}

// Resolve maps a user-typed query to a catalog ingredient name. Matching is
// case-insensitive and tries exact, then prefix, then substring; prefix and
// substring ties go to the earliest catalog entry so results are stable.
func (b *Book) Resolve(query string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", fmt.Errorf("empty query: %w", domain.ErrUnknownIngredient)
	}

	prefix, substring := "", ""
	for _, ing := range b.cat.All() {
		name := strings.ToLower(ing.Name)
		if name == q {
			return ing.Name, nil
		}
		if prefix == "" && strings.HasPrefix(name, q) {
			prefix = ing.Name
		}
		if substring == "" && strings.Contains(name, q) {
			substring = ing.Name
		}
	}
	if prefix != "" {
		return prefix, nil
	}
	if substring != "" {
		return substring, nil
	}
	return "", fmt.Errorf("%q: %w", query, domain.ErrUnknownIngredient)
}

// Add puts an ingredient into the inventory and returns its resolved name.
func (b *Book) Add(query string) (string, error) {
	return b.set(query, func(bit uint64) {
		b.have |= bit
	})
}

// Remove takes an ingredient out of the inventory. Removing also clears its
// surplus mark.
func (b *Book) Remove(query string) (string, error) {
	return b.set(query, func(bit uint64) {
		b.have &^= bit
		b.surplus &^= bit
	})
}

// MarkSurplus flags a carried ingredient as overabundant. The ingredient is
// added to the inventory if it was not there already.
func (b *Book) MarkSurplus(query string) (string, error) {
	return b.set(query, func(bit uint64) {
		b.have |= bit
		b.surplus |= bit
	})
}

// UnmarkSurplus clears the surplus flag but keeps the ingredient carried.
func (b *Book) UnmarkSurplus(query string) (string, error) {
	return b.set(query, func(bit uint64) {
		b.surplus &^= bit
	})
}

func (b *Book) set(query string, apply func(bit uint64)) (string, error) {
	name, err := b.Resolve(query)
	if err != nil {
		return "", err
	}
	bit, err := b.cat.Bit(name)
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	apply(bit)
	if err := b.save(); err != nil {
		return "", err
	}
	return name, nil
}

// Clear empties both the inventory and the surplus set.
func (b *Book) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.have, b.surplus = 0, 0
	return b.save()
}

// Mask returns the carried-ingredient bitmask.
func (b *Book) Mask() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.have
}

// SurplusMask returns the surplus bitmask.
func (b *Book) SurplusMask() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.surplus
}

// Names returns the carried ingredients in catalog order.
func (b *Book) Names() []string {
	return b.cat.Names(b.Mask())
}

// SurplusNames returns the surplus ingredients in catalog order.
func (b *Book) SurplusNames() []string {
	return b.cat.Names(b.SurplusMask())
}

// Size reports how many ingredients are carried.
func (b *Book) Size() int {
	return len(b.Names())
}
