package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

func testIngredients() []domain.Ingredient {
	return []domain.Ingredient{
		{Name: "Water", Category: domain.CategoryLiquid, Solved: true},
		{Name: "Vegetables", Category: domain.CategoryProduce, Stats: domain.Stats{Hunger: 5, Stress: 5, Sell: 5}, Solved: true},
		{Name: "Salt", Category: domain.CategorySeasoning, Stats: domain.Stats{Hunger: 6, Stress: 20, Sell: 63}, Solved: true},
		{Name: "Chicken", Category: domain.CategoryProtein},
	}
}

func TestStoreCoderRoundTrip(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store, err := NewStore(testIngredients(), "", log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	bit, err := store.Bit("Salt")
	if err != nil {
		t.Fatalf("bit: %v", err)
	}
	if bit != 1<<2 {
		t.Fatalf("expected Salt at bit 2, got mask %b", bit)
	}

	mask, err := store.MaskOf("Water", "Salt")
	if err != nil {
		t.Fatalf("mask: %v", err)
	}
	if mask != 0b101 {
		t.Fatalf("expected mask 0b101, got %b", mask)
	}

	names := store.Names(mask)
	if len(names) != 2 || names[0] != "Water" || names[1] != "Salt" {
		t.Fatalf("expected [Water Salt] in catalog order, got %v", names)
	}

	if !store.Contains(mask, "Water") || store.Contains(mask, "Chicken") {
		t.Fatalf("contains checks failed for mask %b", mask)
	}

	if _, err := store.Bit("Dragonfruit"); !errors.Is(err, domain.ErrUnknownIngredient) {
		t.Fatalf("expected ErrUnknownIngredient, got %v", err)
	}
}

func TestStoreOrderHashTracksOrder(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	a, err := NewStore(testIngredients(), "", log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	b, err := NewStore(testIngredients(), "", log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if a.OrderHash() != b.OrderHash() {
		t.Fatalf("identical catalogs produced different order hashes")
	}

	reordered := testIngredients()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	c, err := NewStore(reordered, "", log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if a.OrderHash() == c.OrderHash() {
		t.Fatalf("reordered catalog kept the same order hash")
	}
}

func TestStoreResolve(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store, err := NewStore(testIngredients(), "", log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	want := domain.Stats{Hunger: 105, Stress: 12, Sell: 89}
	if err := store.Resolve("Chicken", want); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got, err := store.Get("Chicken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Solved || got.Stats != want {
		t.Fatalf("expected solved %+v, got %+v", want, got)
	}

	// Idempotent re-resolve.
	if err := store.Resolve("Chicken", want); err != nil {
		t.Fatalf("re-resolve: %v", err)
	}

	if err := store.Resolve("Dragonfruit", want); !errors.Is(err, domain.ErrUnknownIngredient) {
		t.Fatalf("expected ErrUnknownIngredient, got %v", err)
	}
}

func TestStoreUnsolved(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store, err := NewStore(testIngredients(), "", log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	all := store.Unsolved(0)
	if len(all) != 1 || all[0] != "Chicken" {
		t.Fatalf("expected [Chicken] unsolved, got %v", all)
	}

	mask, _ := store.MaskOf("Water", "Salt")
	if got := store.Unsolved(mask); got != nil {
		t.Fatalf("expected no unsolved in solved-only mask, got %v", got)
	}
}

func TestStoreRejectsBadCatalogs(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	dup := testIngredients()
	dup = append(dup, domain.Ingredient{Name: "Water", Category: domain.CategoryLiquid})
	if _, err := NewStore(dup, "", log); err == nil {
		t.Fatalf("expected error for duplicate ingredient name")
	}

	uncategorized := []domain.Ingredient{{Name: "Mystery"}}
	if _, err := NewStore(uncategorized, "", log); err == nil {
		t.Fatalf("expected error for missing category")
	}

	if _, err := NewStore(nil, "", log); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestFileRoundTrip(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	path := filepath.Join(t.TempDir(), "catalog.json")

	store, err := NewStore(testIngredients(), path, log)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Resolve persists the catalog to disk.
	stats := domain.Stats{Hunger: 105, Stress: 12, Sell: 89}
	if err := store.Resolve("Chicken", stats); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("catalog file not written: %v", err)
	}

	loaded, err := LoadFile(path, log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.OrderHash() != store.OrderHash() {
		t.Fatalf("round trip changed the catalog order")
	}
	got, err := loaded.Get("Chicken")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Solved || got.Stats != stats {
		t.Fatalf("round trip lost resolved stats: %+v", got)
	}
}
