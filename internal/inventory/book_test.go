package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hammamikhairi/dustcook/internal/catalog"
	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store, err := catalog.NewStore([]domain.Ingredient{
		{Name: "Water", Category: domain.CategoryLiquid, Solved: true},
		{Name: "Wheat Flour", Category: domain.CategoryStarch, Solved: true},
		{Name: "Wild Vegetables", Category: domain.CategoryProduce, Solved: true},
		{Name: "Salt", Category: domain.CategorySeasoning, Solved: true},
	}, "", log)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return store
}

func newBook(t *testing.T, path string) *Book {
	t.Helper()
	book, err := New(testCatalog(t), path, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	return book
}

func TestResolve(t *testing.T) {
	book := newBook(t, "")

	tests := []struct {
		query string
		want  string
		err   bool
	}{
		{query: "Salt", want: "Salt"},
		{query: "salt", want: "Salt"},
		{query: "  WATER ", want: "Water"},
		{query: "wh", want: "Wheat Flour"},    // prefix
		{query: "veget", want: "Wild Vegetables"}, // substring
		{query: "wi", want: "Wild Vegetables"},
		{query: "plasma", err: true},
		{query: "", err: true},
	}
	for _, tt := range tests {
		got, err := book.Resolve(tt.query)
		if tt.err {
			if !errors.Is(err, domain.ErrUnknownIngredient) {
				t.Fatalf("%q: expected ErrUnknownIngredient, got %v", tt.query, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tt.query, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %q, got %q", tt.query, tt.want, got)
		}
	}
}

func TestAddRemoveSurplus(t *testing.T) {
	book := newBook(t, "")

	for _, q := range []string{"water", "salt", "wheat"} {
		if _, err := book.Add(q); err != nil {
			t.Fatalf("add %q: %v", q, err)
		}
	}
	want := []string{"Water", "Wheat Flour", "Salt"}
	if got := book.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if book.Size() != 3 {
		t.Fatalf("expected size 3, got %d", book.Size())
	}

	// Adding twice is a no-op.
	if _, err := book.Add("salt"); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if book.Size() != 3 {
		t.Fatalf("re-add changed size to %d", book.Size())
	}

	// Surplus implies carried, and removal clears the surplus mark.
	if _, err := book.MarkSurplus("veget"); err != nil {
		t.Fatalf("surplus: %v", err)
	}
	if got := book.SurplusNames(); !reflect.DeepEqual(got, []string{"Wild Vegetables"}) {
		t.Fatalf("unexpected surplus: %v", got)
	}
	if book.Size() != 4 {
		t.Fatalf("surplus did not add to inventory")
	}
	if _, err := book.Remove("veget"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if book.SurplusMask() != 0 {
		t.Fatalf("remove left surplus mark behind")
	}

	if err := book.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if book.Mask() != 0 || book.SurplusMask() != 0 {
		t.Fatalf("clear left state behind")
	}
}

func TestStatePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	book := newBook(t, path)
	if _, err := book.Add("water"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := book.MarkSurplus("salt"); err != nil {
		t.Fatalf("surplus: %v", err)
	}

	reloaded := newBook(t, path)
	if !reflect.DeepEqual(reloaded.Names(), []string{"Water", "Salt"}) {
		t.Fatalf("unexpected reloaded inventory: %v", reloaded.Names())
	}
	if !reflect.DeepEqual(reloaded.SurplusNames(), []string{"Salt"}) {
		t.Fatalf("unexpected reloaded surplus: %v", reloaded.SurplusNames())
	}
}

func TestStateDropsUnknownNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	raw := `{"inventory": ["Water", "Plasma"], "surplus": []}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	book := newBook(t, path)
	if !reflect.DeepEqual(book.Names(), []string{"Water"}) {
		t.Fatalf("expected only Water to survive, got %v", book.Names())
	}
}

func TestStateRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := New(testCatalog(t), path, logger.New(logger.LevelOff, nil)); err == nil {
		t.Fatalf("expected error on corrupt state file")
	}
}
