package solver

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/dustcook/internal/catalog"
	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store, err := catalog.NewStore([]domain.Ingredient{
		{Name: "Bread", Category: domain.CategoryStarch, Stats: domain.Stats{Hunger: 50, Stress: 10, Sell: 40}, Solved: true},
		{Name: "Ham", Category: domain.CategoryProtein, Stats: domain.Stats{Hunger: 100, Stress: 35, Sell: 155}, Solved: true},
		{Name: "Chicken", Category: domain.CategoryProtein},
		{Name: "Mystery Meat", Category: domain.CategoryProtein},
	}, "", log)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return store
}

func TestSolveStrictPair(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := testCatalog(t)
	s := New(store, store, log)

	with := domain.Observation{
		Ingredients: []string{"Bread", "Ham", "Chicken"},
		Stats:       domain.Stats{Hunger: 270, Stress: 119, Sell: 492},
	}
	without := domain.Observation{
		Ingredients: []string{"Bread", "Ham"},
		Stats:       domain.Stats{Hunger: 165, Stress: 107, Sell: 403},
	}

	got, err := s.Solve("Chicken", with, without)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	want := domain.Stats{Hunger: 105, Stress: 12, Sell: 89}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	ing, err := store.Get("Chicken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ing.Solved || ing.Stats != want {
		t.Fatalf("catalog not updated: %+v", ing)
	}

	// Solving again with the same observations is a no-op.
	if _, err := s.Solve("Chicken", with, without); err != nil {
		t.Fatalf("re-solve: %v", err)
	}
}

func TestSolveSubstitutedPair(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := testCatalog(t)
	s := New(store, store, log)

	// The without-dish swaps Chicken for Ham, which is already solved,
	// so Ham's contribution folds back into the difference.
	with := domain.Observation{
		Ingredients: []string{"Bread", "Chicken"},
		Stats:       domain.Stats{Hunger: 155, Stress: 22, Sell: 129},
	}
	without := domain.Observation{
		Ingredients: []string{"Bread", "Ham"},
		Stats:       domain.Stats{Hunger: 150, Stress: 45, Sell: 195},
	}

	got, err := s.Solve("Chicken", with, without)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	want := domain.Stats{Hunger: 105, Stress: 12, Sell: 89}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSolveRejectsBadPairs(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	tests := []struct {
		name    string
		target  string
		with    domain.Observation
		without domain.Observation
		wantErr error
	}{
		{
			name:    "target missing from with-dish",
			target:  "Chicken",
			with:    domain.Observation{Ingredients: []string{"Bread"}},
			without: domain.Observation{Ingredients: []string{"Bread"}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "two ingredients differ",
			target:  "Chicken",
			with:    domain.Observation{Ingredients: []string{"Bread", "Ham", "Chicken"}},
			without: domain.Observation{Ingredients: []string{"Bread"}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "target in both dishes",
			target:  "Chicken",
			with:    domain.Observation{Ingredients: []string{"Bread", "Chicken"}},
			without: domain.Observation{Ingredients: []string{"Chicken"}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unsolved substitute",
			target:  "Chicken",
			with:    domain.Observation{Ingredients: []string{"Bread", "Chicken"}},
			without: domain.Observation{Ingredients: []string{"Bread", "Mystery Meat"}},
			wantErr: domain.ErrUnsolvedIngredient,
		},
		{
			// Shared members cancel arithmetically, but an unsolved one
			// still violates the observation contract.
			name:    "unsolved ingredient in both dishes",
			target:  "Chicken",
			with:    domain.Observation{Ingredients: []string{"Mystery Meat", "Chicken"}},
			without: domain.Observation{Ingredients: []string{"Mystery Meat"}},
			wantErr: domain.ErrUnsolvedIngredient,
		},
		{
			name:    "unknown target",
			target:  "Tofu",
			with:    domain.Observation{Ingredients: []string{"Bread", "Tofu"}},
			without: domain.Observation{Ingredients: []string{"Bread"}},
			wantErr: domain.ErrUnknownIngredient,
		},
		{
			name:    "unknown observation ingredient",
			target:  "Chicken",
			with:    domain.Observation{Ingredients: []string{"Tofu", "Chicken"}},
			without: domain.Observation{Ingredients: []string{"Tofu"}},
			wantErr: domain.ErrUnknownIngredient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testCatalog(t)
			s := New(store, store, log)

			_, err := s.Solve(tt.target, tt.with, tt.without)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			// A failed solve never touches the catalog.
			ing, _ := store.Get("Chicken")
			if ing.Solved {
				t.Fatalf("catalog written despite error")
			}
		})
	}
}

func TestIsolationPairs(t *testing.T) {
	chicken := uint64(1 << 2)
	jobs := []domain.CookJob{
		{Recipe: "Sandwich", Mask: 0b0111},  // Bread, Ham, Chicken
		{Recipe: "Plain", Mask: 0b0011},     // Bread, Ham
		{Recipe: "Feast", Mask: 0b1111},     // adds Mystery Meat, no partner
		{Recipe: "Sandwich2", Mask: 0b0111}, // duplicate mask, skipped
	}

	pairs := IsolationPairs(chicken, jobs)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].With.Recipe != "Sandwich" || pairs[0].Without.Recipe != "Plain" {
		t.Fatalf("unexpected pair: %s / %s", pairs[0].With.Recipe, pairs[0].Without.Recipe)
	}

	if pairs := IsolationPairs(1<<3, jobs[:2]); pairs != nil {
		t.Fatalf("expected no pairs, got %v", pairs)
	}
}
