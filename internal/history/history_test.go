package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/donikhodjaev/misbaha/internal/models"
)

func day(t time.Time, offset int) string {
	return models.Day(t.AddDate(0, 0, offset))
}

func TestUpsert_ReplacesExistingDate(t *testing.T) {
	log := FromEntries(nil)

	log.Upsert("2026-08-30", 10, map[string]int{"subhanallah": 10})
	log.Upsert("2026-08-30", 25, map[string]int{"subhanallah": 25})

	if log.Len() != 1 {
		t.Fatalf("expected 1 entry after upserting same date twice, got %d", log.Len())
	}
	entry := log.Entries()[0]
	if entry.Total != 25 {
		t.Errorf("expected latest total to win, got %d", entry.Total)
	}
}

func TestUpsert_BoundedToThirtyEntries(t *testing.T) {
	log := FromEntries(nil)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)

	for i := 0; i < 45; i++ {
		date := models.Day(start.AddDate(0, 0, i))
		log.Upsert(date, i+1, nil)
	}

	if log.Len() != MaxEntries {
		t.Fatalf("expected log bounded to %d entries, got %d", MaxEntries, log.Len())
	}

	entries := log.Entries()
	if entries[0].Total != 16 {
		t.Errorf("expected oldest retained entry to be the 16th append, got total %d", entries[0].Total)
	}
	if entries[len(entries)-1].Total != 45 {
		t.Errorf("expected newest entry to be the last append, got total %d", entries[len(entries)-1].Total)
	}
}

func TestComputeStats_EmptyLog(t *testing.T) {
	log := FromEntries(nil)
	if stats := log.ComputeStats(); stats != nil {
		t.Errorf("expected nil stats for empty log, got %+v", stats)
	}
}

func TestComputeStats(t *testing.T) {
	log := FromEntries([]models.HistoryEntry{
		{Date: "2026-08-27", Total: 40},
		{Date: "2026-08-28", Total: 100},
		{Date: "2026-08-29", Total: 100},
		{Date: "2026-08-30", Total: 33},
	})

	stats := log.ComputeStats()
	if stats == nil {
		t.Fatal("expected stats")
	}
	if stats.Average != 68 {
		t.Errorf("expected rounded average 68, got %d", stats.Average)
	}
	if stats.BestDay != 100 {
		t.Errorf("expected best day 100, got %d", stats.BestDay)
	}
	if stats.BestDayDate != "2026-08-28" {
		t.Errorf("expected first occurrence of the best total, got %s", stats.BestDayDate)
	}
	if stats.TotalDays != 4 {
		t.Errorf("expected 4 days, got %d", stats.TotalDays)
	}
}

func TestComputeStreak_TodayZeroBreaksChain(t *testing.T) {
	today := time.Now()
	log := FromEntries([]models.HistoryEntry{
		{Date: day(today, -2), Total: 3},
		{Date: day(today, -1), Total: 5},
	})

	if got := log.ComputeStreak(today, 0); got != 0 {
		t.Errorf("expected streak 0 with live today total 0, got %d", got)
	}
	if got := log.ComputeStreak(today, 7); got != 3 {
		t.Errorf("expected streak 3 with live today total > 0, got %d", got)
	}
}

func TestComputeStreak_GapStopsWalk(t *testing.T) {
	today := time.Now()

	// Last 7 days at 50, except a zero-total gap 4 days back.
	var entries []models.HistoryEntry
	for i := 7; i >= 1; i-- {
		total := 50
		if i == 4 {
			total = 0
		}
		entries = append(entries, models.HistoryEntry{Date: day(today, -i), Total: total})
	}
	log := FromEntries(entries)

	// today + 3 prior days, then the gap.
	if got := log.ComputeStreak(today, 50); got != 4 {
		t.Errorf("expected streak 4 (today plus 3 days before the gap), got %d", got)
	}
}

func TestComputeStreak_MissingDayStopsWalk(t *testing.T) {
	today := time.Now()
	log := FromEntries([]models.HistoryEntry{
		{Date: day(today, -3), Total: 10}, // not consecutive with yesterday
		{Date: day(today, -1), Total: 10},
	})

	if got := log.ComputeStreak(today, 1); got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestComputeByType_SumsHistoryPlusToday(t *testing.T) {
	today := time.Now()
	types := []models.ZikrType{
		{ID: "subhanallah"},
		{ID: "alhamdulillah"},
	}

	log := FromEntries([]models.HistoryEntry{
		{Date: day(today, -2), Total: 30, Counts: map[string]int{"subhanallah": 30}},
		{Date: day(today, -1), Total: 20, Counts: map[string]int{"subhanallah": 10, "alhamdulillah": 10}},
	})

	totals := log.ComputeByType(types, map[string]int{"subhanallah": 5}, today)
	if totals["subhanallah"] != 45 {
		t.Errorf("expected 45 for subhanallah, got %d", totals["subhanallah"])
	}
	if totals["alhamdulillah"] != 10 {
		t.Errorf("expected 10 for alhamdulillah, got %d", totals["alhamdulillah"])
	}
}

func TestComputeByType_HonorsInjectedToday(t *testing.T) {
	// The caller's clock decides which archived entry is "today", so a
	// frozen clock must not double-count that day against live counts.
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	types := []models.ZikrType{{ID: "subhanallah"}}

	log := FromEntries([]models.HistoryEntry{
		{Date: day(today, -1), Total: 10, Counts: map[string]int{"subhanallah": 10}},
		{Date: day(today, 0), Total: 7, Counts: map[string]int{"subhanallah": 7}},
	})

	totals := log.ComputeByType(types, map[string]int{"subhanallah": 7}, today)
	if totals["subhanallah"] != 17 {
		t.Errorf("expected 17 for subhanallah, got %d", totals["subhanallah"])
	}
}

func TestComputeTimeSeries(t *testing.T) {
	today := time.Now()
	log := FromEntries([]models.HistoryEntry{
		{Date: day(today, -1), Total: 12},
		// A stale entry for today; the live total must win.
		{Date: day(today, 0), Total: 3},
	})

	points := log.ComputeTimeSeries(7, today, 99)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	for i := 1; i < len(points); i++ {
		if !(points[i-1].Date < points[i].Date) {
			t.Fatalf("expected oldest-to-newest ordering, got %s before %s", points[i-1].Date, points[i].Date)
		}
	}

	last := points[len(points)-1]
	if last.Date != day(today, 0) {
		t.Errorf("expected series to end today, got %s", last.Date)
	}
	if last.Value != 99 {
		t.Errorf("expected live today total 99, got %d", last.Value)
	}
	if points[len(points)-2].Value != 12 {
		t.Errorf("expected yesterday's archived total 12, got %d", points[len(points)-2].Value)
	}
	if points[0].Value != 0 {
		t.Errorf("expected 0 for days without entries, got %d", points[0].Value)
	}
}

func TestFromEntries_TrimsOversizedImport(t *testing.T) {
	var entries []models.HistoryEntry
	for i := 0; i < 40; i++ {
		entries = append(entries, models.HistoryEntry{
			Date:  fmt.Sprintf("2026-07-%02d", i%28+1),
			Total: i,
		})
	}

	log := FromEntries(entries)
	if log.Len() != MaxEntries {
		t.Errorf("expected import trimmed to %d entries, got %d", MaxEntries, log.Len())
	}
}
