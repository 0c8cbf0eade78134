package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/donikhodjaev/misbaha/internal/storage"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &Context{Store: store}
}

func TestInitCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "misbaha.db")
	ctx := &Context{Store: storage.NewSQLiteStore(dbPath)}
	defer ctx.Store.Close()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestTapCmd(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &TapCmd{Times: 35}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("tap failed: %v", err)
	}
	if got := ctx.Engine.TodayTotal(); got != 35 {
		t.Errorf("TodayTotal() = %d, want 35", got)
	}

	undo := &TapCmd{Times: 1, Undo: true}
	if err := undo.Run(ctx); err != nil {
		t.Fatalf("tap --undo failed: %v", err)
	}
	if got := ctx.Engine.TodayTotal(); got != 34 {
		t.Errorf("TodayTotal() after undo = %d, want 34", got)
	}
}

func TestTapCmdValidate(t *testing.T) {
	cmd := &TapCmd{Times: 0}
	if err := cmd.Validate(); err == nil {
		t.Error("expected validation error for times=0")
	}
}

func TestGoalCmd(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&GoalCmd{Value: 250}).Run(ctx); err != nil {
		t.Fatalf("goal set failed: %v", err)
	}
	if got := ctx.Engine.Settings().DailyGoal; got != 250 {
		t.Errorf("DailyGoal = %d, want 250", got)
	}

	if err := (&GoalCmd{Value: 20000}).Run(ctx); err == nil {
		t.Error("expected error for out-of-range goal")
	}
}

func TestZikrCommands(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&ZikrAddCmd{Name: "Test Dhikr"}).Run(ctx); err != nil {
		t.Fatalf("zikr add failed: %v", err)
	}

	var customID string
	for _, zt := range ctx.Engine.Types() {
		if zt.Custom {
			customID = zt.ID
		}
	}
	if customID == "" {
		t.Fatal("custom type not created")
	}

	// The new type becomes active
	active, _ := ctx.Engine.Active()
	if active.ID != customID {
		t.Errorf("active = %s, want %s", active.ID, customID)
	}

	if err := (&ZikrSelectCmd{ID: "subhanallah"}).Run(ctx); err != nil {
		t.Fatalf("zikr select failed: %v", err)
	}

	if err := (&ZikrListCmd{}).Run(ctx); err != nil {
		t.Fatalf("zikr list failed: %v", err)
	}

	if err := (&ZikrDeleteCmd{ID: customID, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("zikr delete failed: %v", err)
	}
	for _, zt := range ctx.Engine.Types() {
		if zt.ID == customID {
			t.Error("custom type still present after delete")
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&TapCmd{Times: 10}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	exportPath := filepath.Join(t.TempDir(), "export.json")
	if err := (&ExportCmd{Output: exportPath}).Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if err := (&ImportCmd{Input: exportPath, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if got := ctx.Engine.TodayTotal(); got != 10 {
		t.Errorf("TodayTotal() after round trip = %d, want 10", got)
	}
}

func TestResetSessionCmd(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&TapCmd{Times: 5}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if err := (&ResetSessionCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("reset session failed: %v", err)
	}

	active, _ := ctx.Engine.Active()
	if got := ctx.Engine.Count(active.ID); got != 0 {
		t.Errorf("session count = %d, want 0", got)
	}
	// Today's progress survives a session reset
	if got := ctx.Engine.TodayTotal(); got != 5 {
		t.Errorf("TodayTotal() = %d, want 5", got)
	}
}

func TestStatsAndReadOnlyCommands(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&TapCmd{Times: 3}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	for name, run := range map[string]func() error{
		"stats":        func() error { return (&StatsCmd{Period: 7}).Run(ctx) },
		"history":      func() error { return (&HistoryCmd{Limit: 10}).Run(ctx) },
		"streak":       func() error { return (&StreakCmd{}).Run(ctx) },
		"achievements": func() error { return (&AchievementsCmd{}).Run(ctx) },
		"settings":     func() error { return (&SettingsCmd{NotifyEvery: -1}).Run(ctx) },
		"store-path":   func() error { return (&DebugStorePathCmd{}).Run(ctx) },
		"dump-payload": func() error { return (&DebugDumpPayloadCmd{}).Run(ctx) },
		"dump-history": func() error { return (&DebugDumpHistoryCmd{}).Run(ctx) },
	} {
		if err := run(); err != nil {
			t.Errorf("%s failed: %v", name, err)
		}
	}
}

func TestBackupCommands(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
}
