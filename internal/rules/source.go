// Package rules provides the recipe rule set: which category multiset each
// named recipe needs. Malformed definitions are rejected once at load, so
// the enumerator never has to re-validate shapes.
package rules

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Compile-time interface check.
var _ domain.RuleSource = (*Source)(nil)

// Source holds the fixed recipe rule set. Immutable after construction.
type Source struct {
	recipes []domain.Recipe
	index   map[string]int
	log     *logger.Logger
}

// NewSource creates a rule source, validating every recipe shape.
func NewSource(recipes []domain.Recipe, log *logger.Logger) (*Source, error) {
	s := &Source{
		recipes: make([]domain.Recipe, len(recipes)),
		index:   make(map[string]int, len(recipes)),
		log:     log,
	}
	for i, r := range recipes {
		if len(r.Slots) < 1 || len(r.Slots) > 5 {
			return nil, fmt.Errorf("recipe %q has %d slots: %w", r.Name, len(r.Slots), domain.ErrInvalidRecipe)
		}
		for _, slot := range r.Slots {
			if slot == domain.CategoryNone {
				return nil, fmt.Errorf("recipe %q has an uncategorized slot: %w", r.Name, domain.ErrInvalidRecipe)
			}
		}
		if _, dup := s.index[r.Name]; dup {
			return nil, fmt.Errorf("duplicate recipe %q", r.Name)
		}
		s.recipes[i] = r
		s.index[r.Name] = i
	}
	log.Debug("rule set ready: %d recipes", len(recipes))
	return s, nil
}

// All returns a copy of every recipe in definition order.
func (s *Source) All() []domain.Recipe {
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Get returns a recipe by name.
func (s *Source) Get(name string) (domain.Recipe, error) {
	i, ok := s.index[name]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("recipe %q: %w", name, domain.ErrNotFound)
	}
	return s.recipes[i], nil
}

// LoadFile reads recipe rules from a JSON file: an ordered "recipes" array
// of {name, slots, base} records.
func LoadFile(path string, log *logger.Logger) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	var recipes []domain.Recipe
	var parseErr error
	gjson.GetBytes(raw, "recipes").ForEach(func(_, v gjson.Result) bool {
		r := domain.Recipe{
			Name: v.Get("name").String(),
			Base: domain.Stats{
				Hunger: int(v.Get("base.hunger").Int()),
				Stress: int(v.Get("base.stress").Int()),
				Sell:   int(v.Get("base.sell_value").Int()),
			},
		}
		v.Get("slots").ForEach(func(_, slot gjson.Result) bool {
			cat := domain.ParseCategory(slot.String())
			if cat == domain.CategoryNone {
				parseErr = fmt.Errorf("recipe %q: unknown category %q", r.Name, slot.String())
				return false
			}
			r.Slots = append(r.Slots, cat)
			return true
		})
		if parseErr != nil {
			return false
		}
		recipes = append(recipes, r)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	log.Debug("loaded %d recipes from %s", len(recipes), path)
	return NewSource(recipes, log)
}
