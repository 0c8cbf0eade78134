package engine

import (
	"github.com/donikhodjaev/misbaha/internal/history"
	"github.com/donikhodjaev/misbaha/internal/models"
)

// ImportData carries the fields of a decoded import payload. Nil
// fields were absent and leave the corresponding state untouched.
type ImportData struct {
	TodayCount   *int
	TotalAllTime *int
	StreakDays   *int // informational only; streaks are derived
	DailyGoal    *int
	History      []models.HistoryEntry
	Achievements []string
	Counts       map[string]int
	TodayCounts  map[string]int
}

// ApplyImport replaces state slices with imported ones. The caller
// (syncer.Import) has already fully decoded and validated the
// payload, so application cannot fail partway. Unlocked achievements
// are unioned, never removed; no notification events fire for
// imported data.
func (e *Engine) ApplyImport(data ImportData) {
	if data.DailyGoal != nil && *data.DailyGoal >= models.MinDailyGoal && *data.DailyGoal <= models.MaxDailyGoal {
		e.settings.DailyGoal = *data.DailyGoal
	}

	if data.Counts != nil {
		e.lifetime = sanitizeCounts(data.Counts)
	}

	if data.TodayCounts != nil {
		e.today = sanitizeCounts(data.TodayCounts)
	}

	if data.TodayCount != nil && *data.TodayCount >= 0 {
		e.todayTotal = *data.TodayCount
	}

	if data.TotalAllTime != nil && *data.TotalAllTime >= 0 {
		e.totalAllTime = *data.TotalAllTime
	}

	if data.History != nil {
		e.log = history.FromEntries(data.History)
	}

	if data.Achievements != nil {
		have := e.unlockedSet()
		for _, id := range data.Achievements {
			if !have[id] {
				e.unlocked = append(e.unlocked, id)
				have[id] = true
			}
		}
	}

	e.seedCounts()
	e.persistAll()
}

func sanitizeCounts(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for id, n := range src {
		if n < 0 {
			n = 0
		}
		out[id] = n
	}
	return out
}
