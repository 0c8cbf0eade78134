package cli

import (
	"fmt"
	"time"

	"github.com/donikhodjaev/misbaha/internal/backup"
	"github.com/donikhodjaev/misbaha/internal/lockfile"
	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	if err := checkSchemaVersion(ctx); err != nil {
		fmt.Printf("❌ Schema version: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Schema version: OK\n")
	}

	if storeReachable {
		if err := checkData(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (store not reachable)\n")
	}

	// Warning only: a missing backup is not a fault.
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Warning only: a concurrent session risks lost writes.
	if err := checkConcurrentSession(ctx); err != nil {
		fmt.Printf("⚠ Concurrent session: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent session: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		if err := sqliteStore.Ping(); err != nil {
			return err
		}
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store carries its version inline; Load already checked it.
		return nil
	}
	if _, err := sqliteStore.SchemaVersion(); err != nil {
		return err
	}
	return nil
}

func checkData(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	seen := make(map[string]bool)
	for _, zt := range eng.Types() {
		if seen[zt.ID] {
			return fmt.Errorf("duplicate zikr type id: %s", zt.ID)
		}
		seen[zt.ID] = true
	}

	if _, ok := eng.Active(); !ok {
		return fmt.Errorf("active zikr id points at no known type")
	}

	for _, entry := range eng.History().Entries() {
		if _, err := time.Parse(models.DayFormat, entry.Date); err != nil {
			return fmt.Errorf("history entry has malformed date %q", entry.Date)
		}
		if entry.Total < 0 {
			return fmt.Errorf("history entry %s has negative total", entry.Date)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'misbaha backup create'")
	}
	return nil
}

func checkConcurrentSession(ctx *Context) error {
	pid, running, err := lockfile.Check(ctx.Store.Path())
	if err != nil {
		return err
	}
	if running {
		return fmt.Errorf("an interactive session is already running (pid %d)", pid)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC; day rollover follows UTC midnight\n")
	}
	return nil
}
