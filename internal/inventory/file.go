package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
)

// stateFile is the on-disk shape of a session's inventory. Ingredients are
// stored by name so the file survives catalog reordering.
type stateFile struct {
	Inventory []string `json:"inventory"`
	Surplus   []string `json:"surplus"`
}

// load reads the state file, if present. Names that no longer resolve
// against the catalog are dropped with a warning rather than failing the
// whole session.
func (b *Book) load() error {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%s: not valid JSON", b.path)
	}

	restore := func(field string, apply func(bit uint64)) {
		gjson.GetBytes(raw, field).ForEach(func(_, value gjson.Result) bool {
			bit, err := b.cat.Bit(value.String())
			if err != nil {
				b.log.Warn("inventory state: dropping unknown ingredient %q", value.String())
				return true
			}
			apply(bit)
			return true
		})
	}
	restore("inventory", func(bit uint64) { b.have |= bit })
	restore("surplus", func(bit uint64) {
		b.have |= bit
		b.surplus |= bit
	})
	return nil
}

// save writes the current state. Callers hold b.mu.
func (b *Book) save() error {
	if b.path == "" {
		return nil
	}
	state := stateFile{
		Inventory: b.cat.Names(b.have),
		Surplus:   b.cat.Names(b.surplus),
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(b.path, raw, 0o644)
}
