package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

// fileEntry mirrors one catalog record on disk. A record without a "solved"
// marker is treated as unsolved.
type fileEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Hunger   int    `json:"hunger"`
	Stress   int    `json:"stress"`
	Sell     int    `json:"sell_value"`
	Solved   bool   `json:"solved,omitempty"`
}

// LoadFile reads the catalog from a JSON file. Records live in an array
// under "ingredients", so the on-disk order survives round trips exactly --
// that order is the contract every cached artifact depends on.
func LoadFile(path string, log *logger.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var ings []domain.Ingredient
	var parseErr error
	gjson.GetBytes(raw, "ingredients").ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		cat := domain.ParseCategory(v.Get("category").String())
		if cat == domain.CategoryNone {
			parseErr = fmt.Errorf("ingredient %q: unknown category %q", name, v.Get("category").String())
			return false
		}
		ings = append(ings, domain.Ingredient{
			Name:     name,
			Category: cat,
			Stats: domain.Stats{
				Hunger: int(v.Get("hunger").Int()),
				Stress: int(v.Get("stress").Int()),
				Sell:   int(v.Get("sell_value").Int()),
			},
			Solved: v.Get("solved").Bool(),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	log.Debug("loaded %d catalog entries from %s", len(ings), path)
	return NewStore(ings, path, log)
}

// save writes the catalog back to its file. Caller holds the write lock.
func (s *Store) save() error {
	entries := make([]fileEntry, len(s.entries))
	for i, ing := range s.entries {
		entries[i] = fileEntry{
			Name:     ing.Name,
			Category: ing.Category.String(),
			Hunger:   ing.Stats.Hunger,
			Stress:   ing.Stats.Stress,
			Sell:     ing.Stats.Sell,
			Solved:   ing.Solved,
		}
	}

	doc := struct {
		Ingredients []fileEntry `json:"ingredients"`
	}{entries}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
