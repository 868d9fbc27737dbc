// Package domain defines the core types and interfaces for the cooking
// optimizer. All other packages depend on domain; domain depends on nothing.
package domain

// Category classifies an ingredient for recipe slot matching. The numeric
// order is the total order used wherever categories are iterated, so
// enumeration stays deterministic.
type Category int

const (
	CategoryNone Category = iota
	CategoryProtein
	CategoryStarch
	CategoryProduce
	CategorySeasoning
	CategoryLiquid
)

// Categories lists every real category in total order.
var Categories = []Category{
	CategoryProtein,
	CategoryStarch,
	CategoryProduce,
	CategorySeasoning,
	CategoryLiquid,
}

// String returns the category name as it appears in data files.
func (c Category) String() string {
	switch c {
	case CategoryProtein:
		return "Protein"
	case CategoryStarch:
		return "Starch"
	case CategoryProduce:
		return "Produce"
	case CategorySeasoning:
		return "Seasoning"
	case CategoryLiquid:
		return "Liquid"
	}
	return "None"
}

// ParseCategory converts a data-file category name to a Category.
func ParseCategory(s string) Category {
	switch s {
	case "Protein":
		return CategoryProtein
	case "Starch":
		return CategoryStarch
	case "Produce":
		return CategoryProduce
	case "Seasoning":
		return CategorySeasoning
	case "Liquid":
		return CategoryLiquid
	}
	return CategoryNone
}

// Stats is one hunger/stress/sell triple. All values are exact integers;
// stress contributions may be negative.
type Stats struct {
	Hunger int
	Stress int
	Sell   int
}

// Add returns the component-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{s.Hunger + o.Hunger, s.Stress + o.Stress, s.Sell + o.Sell}
}

// Sub returns the component-wise difference s - o.
func (s Stats) Sub(o Stats) Stats {
	return Stats{s.Hunger - o.Hunger, s.Stress - o.Stress, s.Sell - o.Sell}
}

// Road is the road-food objective value: hunger plus stress.
func (s Stats) Road() int { return s.Hunger + s.Stress }

// Ingredient is one entry of the catalog. Stats are only trustworthy when
// Solved is true; unsolved ingredients carry whatever partial data the
// catalog file had.
type Ingredient struct {
	Name     string
	Category Category
	Stats    Stats
	Solved   bool
}

// Recipe is one named recipe shape: 1-5 category slots plus a fixed base
// contribution (often zero) added to every dish cooked from it.
type Recipe struct {
	Name  string
	Slots []Category
	Base  Stats
}

// CookJob is one recipe instantiated with a concrete slot assignment.
// Ingredients are listed in slot order. Mask is the catalog bitmask of the
// member set; two jobs with equal masks are still distinct when they come
// from different recipes or different slot assignments.
type CookJob struct {
	Recipe      string
	Ingredients []string
	Mask        uint64
	Stats       Stats
}

// Observation is one cooked-dish outcome as reported by the player:
// which ingredients went in and the totals the game displayed.
type Observation struct {
	Ingredients []string
	Stats       Stats
}
