package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/donikhodjaev/misbaha/internal/engine"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "misbaha.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	eng := engine.New(store)
	eng.Hydrate()
	return NewModel(eng, store.Path()), eng
}

func TestTick_RolloverRebuildsCachedViews(t *testing.T) {
	m, eng := newTestModel(t)

	current := time.Date(2026, 8, 30, 23, 0, 0, 0, time.Local)
	eng.SetClock(func() time.Time { return current })
	eng.CheckRollover()

	for i := 0; i < 5; i++ {
		eng.Increment()
	}
	m.refreshTypes()
	m.refreshStats()

	if item, ok := m.typeList.Selected(); !ok || item.Today != 5 {
		t.Fatalf("expected today count 5 before midnight, got %v (ok=%v)", item.Today, ok)
	}

	// Midnight passes while the window sits idle on the counter tab.
	current = time.Date(2026, 8, 31, 0, 0, 5, 0, time.Local)
	next, _ := m.Update(tickMsg(current))
	m = next.(Model)

	if eng.TodayTotal() != 0 {
		t.Fatalf("expected today total reset after rollover, got %d", eng.TodayTotal())
	}
	if item, ok := m.typeList.Selected(); !ok || item.Today != 0 {
		t.Errorf("expected type list rebuilt after rollover, got today count %d", item.Today)
	}
}
