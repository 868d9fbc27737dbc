// Package solver derives unknown ingredient stats from pairs of observed
// dishes and records the result in the catalog.
package solver

import (
	"fmt"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Solver isolates one ingredient's contribution by differencing two cooked
// dishes. It only ever writes to the catalog through the writer, and only
// after both observations validate.
type Solver struct {
	cat    domain.CatalogSource
	writer domain.CatalogWriter
	log    *logger.Logger
}

// New creates a solver over the given catalog.
func New(cat domain.CatalogSource, writer domain.CatalogWriter, log *logger.Logger) *Solver {
	return &Solver{cat: cat, writer: writer, log: log}
}

// Solve computes the stats of name from two observations: a dish cooked with
// the ingredient and one cooked without it. The with-dish must contain
// exactly one more copy of name than the without-dish and no other extra
// ingredients, and every other member of both dishes must already be solved.
// The without-dish may substitute solved ingredients in place of name; their
// contributions are added back so the difference still isolates the target.
//
// On success the derived stats are persisted to the catalog and returned.
// Nothing is written when validation fails.
func (s *Solver) Solve(name string, with, without domain.Observation) (domain.Stats, error) {
	if _, err := s.cat.Get(name); err != nil {
		return domain.Stats{}, fmt.Errorf("%q: %w", name, domain.ErrUnknownIngredient)
	}
	// Every member besides the target must be known and already solved:
	// the difference only isolates the target when all other terms are
	// accounted for.
	for _, obs := range [][]string{with.Ingredients, without.Ingredients} {
		for _, ing := range obs {
			entry, err := s.cat.Get(ing)
			if err != nil {
				return domain.Stats{}, fmt.Errorf("%q: %w", ing, domain.ErrUnknownIngredient)
			}
			if ing != name && !entry.Solved {
				return domain.Stats{}, fmt.Errorf("%q: %w", ing, domain.ErrUnsolvedIngredient)
			}
		}
	}

	diff := make(map[string]int)
	for _, ing := range with.Ingredients {
		diff[ing]++
	}
	for _, ing := range without.Ingredients {
		diff[ing]--
	}

	if diff[name] != 1 {
		return domain.Stats{}, fmt.Errorf("with-dish must contain exactly one extra %q: %w", name, domain.ErrValidation)
	}

	// Any surplus on the with side besides the target means the
	// difference mixes two unknowns.
	stats := with.Stats.Sub(without.Stats)
	for ing, n := range diff {
		if ing == name || n == 0 {
			continue
		}
		if n > 0 {
			return domain.Stats{}, fmt.Errorf("with-dish also adds %q: %w", ing, domain.ErrValidation)
		}
		// A substituted ingredient on the without side. Its known
		// contribution is folded back in, once per extra copy.
		sub, _ := s.cat.Get(ing)
		for ; n < 0; n++ {
			stats = stats.Add(sub.Stats)
		}
	}

	if err := s.writer.Resolve(name, stats); err != nil {
		return domain.Stats{}, err
	}
	s.log.Debug("solver: %s = %+v", name, stats)
	return stats, nil
}
