package domain

import "context"

// CatalogSource is the read side of the ingredient catalog. The iteration
// order of All is the catalog's stable total order: bit positions, cache
// keys, and enumeration order all derive from it.
type CatalogSource interface {
	All() []Ingredient
	Get(name string) (Ingredient, error)
	Bit(name string) (uint64, error)
	MaskOf(names ...string) (uint64, error)
	Names(mask uint64) []string
	OrderHash() string
}

// CatalogWriter is the single mutation path into the catalog: the stat
// solver writing a derived contribution. Everything else treats the catalog
// as immutable.
type CatalogWriter interface {
	Resolve(name string, stats Stats) error
}

// RuleSource provides the fixed recipe rule set. Implementations validate
// slot counts at load time, so consumers never see a malformed recipe.
type RuleSource interface {
	All() []Recipe
	Get(name string) (Recipe, error)
}

// JobCache memoizes enumeration output. Implementations must treat entries
// built against a different catalog order hash as misses.
type JobCache interface {
	Get(key string) ([]CookJob, bool)
	Put(key string, jobs []CookJob)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout or route through the terminal UI.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
