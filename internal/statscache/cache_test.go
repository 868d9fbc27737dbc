package statscache

import (
	"reflect"
	"testing"

	"github.com/hammamikhairi/dustcook/internal/domain"
	"github.com/hammamikhairi/dustcook/internal/logger"
)

func sampleJobs() []domain.CookJob {
	return []domain.CookJob{
		{Recipe: "Soup", Ingredients: []string{"Water", "Vegetables", "Salt"}, Mask: 0b111, Stats: domain.Stats{Hunger: 11, Stress: 25, Sell: 68}},
		{Recipe: "Porridge", Ingredients: []string{"Water", "Rice"}, Mask: 0b1001, Stats: domain.Stats{Hunger: 40, Stress: 5, Sell: 20}},
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := New("", "hash-a", log)

	if _, ok := c.Get("inv-1"); ok {
		t.Fatalf("unexpected hit on empty cache")
	}

	c.Put("inv-1", sampleJobs())
	got, ok := c.Get("inv-1")
	if !ok {
		t.Fatalf("expected hit after put")
	}
	if !reflect.DeepEqual(got, sampleJobs()) {
		t.Fatalf("cached jobs differ: %+v", got)
	}

	c.Flush()
	if _, ok := c.Get("inv-1"); ok {
		t.Fatalf("unexpected hit after flush with no disk layer")
	}
}

func TestDiskSurvivesRestart(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()

	first := New(dir, "hash-a", log)
	first.Put("inv-1", sampleJobs())

	// A fresh cache with the same order hash reads the disk entry.
	second := New(dir, "hash-a", log)
	got, ok := second.Get("inv-1")
	if !ok {
		t.Fatalf("expected disk hit after restart")
	}
	if !reflect.DeepEqual(got, sampleJobs()) {
		t.Fatalf("disk jobs differ: %+v", got)
	}

	// Promotion: a second read hits memory even after the disk layer is
	// taken away.
	second.dir = ""
	if _, ok := second.Get("inv-1"); !ok {
		t.Fatalf("expected promoted memory hit")
	}
}

func TestStaleEntriesDiscarded(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()

	old := New(dir, "hash-a", log)
	old.Put("inv-1", sampleJobs())

	// The catalog order changed, so the persisted entry is stale.
	fresh := New(dir, "hash-b", log)
	if _, ok := fresh.Get("inv-1"); ok {
		t.Fatalf("stale entry served despite order hash mismatch")
	}

	// The stale file is gone; a matching cache no longer sees it either.
	back := New(dir, "hash-a", log)
	if _, ok := back.Get("inv-1"); ok {
		t.Fatalf("stale entry should have been deleted on first read")
	}
}
