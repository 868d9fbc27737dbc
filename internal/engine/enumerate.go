// Package engine implements the core optimizer: the combination enumerator
// that expands an inventory against the recipe rule set, and the ranker
// that orders the resulting cookjobs by objective.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithSlotPermutations controls whether distinct orderings of ingredients
// across same-category slots count as distinct cookjobs. Off by default:
// a cookjob is identified by which ingredients it uses, not by which of two
// interchangeable slots each one landed in.
func WithSlotPermutations(on bool) Option {
	return func(e *Engine) { e.slotPermutations = on }
}

// WithCategoryPenalty applies the game's duplicate-category penalty
// (0, -4, -12 per extra same-category ingredient) to cookjob totals.
// Off by default, in which case totals are the exact sum of recipe base
// and ingredient contributions.
func WithCategoryPenalty(on bool) Option {
	return func(e *Engine) { e.categoryPenalty = on }
}

// WithCache memoizes enumeration results. The cache is consulted before
// enumerating and populated after; correctness relies on Enumerate being a
// pure function of (inventory, rules, catalog order).
func WithCache(c domain.JobCache) Option {
	return func(e *Engine) { e.cache = c }
}

// Engine enumerates and ranks cookjobs. It depends only on interfaces and
// never mutates the catalog.
type Engine struct {
	cat   domain.CatalogSource
	rules domain.RuleSource
	log   *logger.Logger

	slotPermutations bool
	categoryPenalty  bool
	cache            domain.JobCache
	rulesHash        string
}

// New creates an engine with the given dependencies and options.
func New(cat domain.CatalogSource, rules domain.RuleSource, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{cat: cat, rules: rules, log: log}
	for _, opt := range opts {
		opt(e)
	}
	e.rulesHash = rulesFingerprint(rules.All())
	return e
}

// rulesFingerprint hashes the full rule set so cache entries computed under
// one set of recipes can never answer for another. The catalog order hash
// covers the other half of a cookjob's identity; together they version every
// cached enumeration.
func rulesFingerprint(recipes []domain.Recipe) string {
	h := sha256.New()
	for _, r := range recipes {
		fmt.Fprintf(h, "%s|%v|%+v\n", r.Name, r.Slots, r.Base)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// categoryGroup is one run of same-category slots within a recipe, in
// first-appearance order.
type categoryGroup struct {
	cat   domain.Category
	slots int
}

// Enumerate returns every cookjob craftable from the inventory mask, for
// every recipe in the rule set. Output order is deterministic: recipes in
// definition order, ingredient choices in catalog order. A recipe with an
// unfillable slot contributes nothing; an empty result is not an error.
func (e *Engine) Enumerate(inventory uint64) []domain.CookJob {
	key := e.cacheKey(inventory)
	if e.cache != nil {
		if jobs, ok := e.cache.Get(key); ok {
			e.log.Debug("enumerate: cache hit for %s (%d jobs)", key, len(jobs))
			return jobs
		}
	}

	// Bucket the inventory's ingredients by category, preserving catalog
	// order within each bucket.
	byCategory := make(map[domain.Category][]domain.Ingredient)
	bits := make(map[string]uint64)
	for i, ing := range e.cat.All() {
		bit := uint64(1) << uint(i)
		if inventory&bit == 0 {
			continue
		}
		byCategory[ing.Category] = append(byCategory[ing.Category], ing)
		bits[ing.Name] = bit
	}

	var jobs []domain.CookJob
	for _, recipe := range e.rules.All() {
		jobs = e.expandRecipe(jobs, recipe, byCategory, bits)
	}

	e.log.Debug("enumerated %d cookjobs for inventory %x", len(jobs), inventory)
	if e.cache != nil {
		e.cache.Put(key, jobs)
	}
	return jobs
}

func (e *Engine) cacheKey(inventory uint64) string {
	return fmt.Sprintf("%016x|perm=%t|pen=%t|rules=%s", inventory, e.slotPermutations, e.categoryPenalty, e.rulesHash)
}

// expandRecipe appends every valid instantiation of one recipe to jobs.
func (e *Engine) expandRecipe(jobs []domain.CookJob, recipe domain.Recipe, byCategory map[domain.Category][]domain.Ingredient, bits map[string]uint64) []domain.CookJob {
	groups := groupSlots(recipe.Slots)

	// Prune: every category group must have at least as many candidates
	// as slots to fill.
	selections := make([][][]domain.Ingredient, len(groups))
	for i, g := range groups {
		candidates := byCategory[g.cat]
		if len(candidates) < g.slots {
			return jobs
		}
		if e.slotPermutations {
			selections[i] = permute(candidates, g.slots)
		} else {
			selections[i] = choose(candidates, g.slots)
		}
	}

	// Cross product across category groups.
	pick := make([][]domain.Ingredient, len(groups))
	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(groups) {
			jobs = append(jobs, e.buildJob(recipe, groups, pick, bits))
			return
		}
		for _, sel := range selections[depth] {
			pick[depth] = sel
			walk(depth + 1)
		}
	}
	walk(0)
	return jobs
}

// buildJob assembles one cookjob from a per-group ingredient selection,
// laying ingredients out in recipe slot order and resolving totals once.
func (e *Engine) buildJob(recipe domain.Recipe, groups []categoryGroup, pick [][]domain.Ingredient, bits map[string]uint64) domain.CookJob {
	job := domain.CookJob{
		Recipe:      recipe.Name,
		Ingredients: make([]string, 0, len(recipe.Slots)),
		Stats:       recipe.Base,
	}

	next := make(map[domain.Category]int, len(groups))
	groupOf := make(map[domain.Category][]domain.Ingredient, len(groups))
	for i, g := range groups {
		groupOf[g.cat] = pick[i]
	}
	for _, slot := range recipe.Slots {
		ing := groupOf[slot][next[slot]]
		next[slot]++
		job.Ingredients = append(job.Ingredients, ing.Name)
		job.Mask |= bits[ing.Name]
		job.Stats = job.Stats.Add(ing.Stats)
	}

	if e.categoryPenalty {
		job.Stats = job.Stats.Add(categoryPenalty(groups))
	}
	return job
}

// categoryPenalty reproduces the game's penalty for stacking ingredients of
// one category: stress -4 and sell -12 per ingredient in the largest
// duplicated category.
func categoryPenalty(groups []categoryGroup) domain.Stats {
	worst := domain.Stats{}
	for _, g := range groups {
		if g.slots < 2 {
			continue
		}
		p := domain.Stats{Stress: -4 * g.slots, Sell: -12 * g.slots}
		if p.Stress < worst.Stress {
			worst = p
		}
	}
	return worst
}

// groupSlots collapses a slot list into per-category counts, keeping
// first-appearance order so enumeration order stays stable.
func groupSlots(slots []domain.Category) []categoryGroup {
	var groups []categoryGroup
	seen := make(map[domain.Category]int)
	for _, cat := range slots {
		if i, ok := seen[cat]; ok {
			groups[i].slots++
			continue
		}
		seen[cat] = len(groups)
		groups = append(groups, categoryGroup{cat: cat, slots: 1})
	}
	return groups
}

// choose returns every k-combination of items, preserving input order
// within each combination.
func choose(items []domain.Ingredient, k int) [][]domain.Ingredient {
	var out [][]domain.Ingredient
	combo := make([]domain.Ingredient, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			out = append(out, append([]domain.Ingredient(nil), combo...))
			return
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			combo[depth] = items[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// permute returns every k-permutation of items.
func permute(items []domain.Ingredient, k int) [][]domain.Ingredient {
	var out [][]domain.Ingredient
	perm := make([]domain.Ingredient, k)
	used := make([]bool, len(items))
	var rec func(depth int)
	rec = func(depth int) {
		if depth == k {
			out = append(out, append([]domain.Ingredient(nil), perm...))
			return
		}
		for i := range items {
			if used[i] {
				continue
			}
			used[i] = true
			perm[depth] = items[i]
			rec(depth + 1)
			used[i] = false
		}
	}
	rec(0)
	return out
}
