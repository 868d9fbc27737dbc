package rules

import (
	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Builtin returns a rule source preloaded with the stock recipe shapes,
// for running without an external data file.
func Builtin(log *logger.Logger) *Source {
	s, err := NewSource(builtinRecipes(), log)
	if err != nil {
		// The builtin table is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return s
}

func builtinRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			Name:  "Rations Pack",
			Slots: []domain.Category{domain.CategoryStarch},
		},
		{
			Name: "Grilled Meat",
			Slots: []domain.Category{
				domain.CategoryProtein,
				domain.CategorySeasoning,
			},
		},
		{
			Name: "Porridge",
			Slots: []domain.Category{
				domain.CategoryLiquid,
				domain.CategoryStarch,
			},
		},
		{
			Name: "Soup",
			Slots: []domain.Category{
				domain.CategoryLiquid,
				domain.CategoryProduce,
				domain.CategorySeasoning,
			},
		},
		{
			Name: "Seafood with Fried Mushrooms",
			Slots: []domain.Category{
				domain.CategoryProtein,
				domain.CategoryProduce,
				domain.CategoryProduce,
			},
		},
		{
			Name: "Stew",
			Slots: []domain.Category{
				domain.CategoryLiquid,
				domain.CategoryProduce,
				domain.CategoryProtein,
				domain.CategorySeasoning,
			},
		},
		{
			Name: "Curry Sandwich",
			Slots: []domain.Category{
				domain.CategoryProduce,
				domain.CategorySeasoning,
				domain.CategoryStarch,
				domain.CategoryProtein,
			},
		},
		{
			Name: "Chicken Sandwich",
			Slots: []domain.Category{
				domain.CategoryProduce,
				domain.CategorySeasoning,
				domain.CategoryStarch,
				domain.CategoryProtein,
				domain.CategoryProtein,
			},
		},
		{
			Name: "Caravan Feast",
			Slots: []domain.Category{
				domain.CategoryLiquid,
				domain.CategoryProduce,
				domain.CategorySeasoning,
				domain.CategoryStarch,
				domain.CategoryProtein,
			},
		},
	}
}
