// Package history keeps the bounded log of daily totals and derives
// statistics from it: averages, best day, streaks, per-type lifetime
// totals and chart series.
package history

import (
	"math"
	"time"

	"github.com/donikhodjaev/misbaha/internal/models"
)

// MaxEntries bounds the log to the most recent days. Upserts beyond
// the bound evict the oldest entries.
const MaxEntries = 30

// Log is a chronologically ordered list of daily entries, at most one
// per calendar date.
type Log struct {
	entries []models.HistoryEntry
}

// FromEntries builds a log from persisted entries, trimming to the
// bound. Entries are expected to be in date order already since they
// are appended once per day; an import could violate this, in which
// case the last MaxEntries elements are still the ones kept.
func FromEntries(entries []models.HistoryEntry) *Log {
	log := &Log{}
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}
	log.entries = append(log.entries, entries...)
	return log
}

// Entries returns a copy of the log contents, oldest first.
func (l *Log) Entries() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Upsert records a day's totals: replace if an entry for the date
// exists, append otherwise, then trim to the bound.
func (l *Log) Upsert(date string, total int, counts map[string]int) {
	snapshot := make(map[string]int, len(counts))
	for id, n := range counts {
		snapshot[id] = n
	}

	entry := models.HistoryEntry{Date: date, Total: total, Counts: snapshot}

	for i := range l.entries {
		if l.entries[i].Date == date {
			l.entries[i] = entry
			return
		}
	}

	l.entries = append(l.entries, entry)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[len(l.entries)-MaxEntries:]
	}
}

// Reset empties the log.
func (l *Log) Reset() {
	l.entries = nil
}

// Stats summarizes the whole log.
type Stats struct {
	Average     int
	BestDay     int
	BestDayDate string
	TotalDays   int
}

// ComputeStats returns nil when the log is empty. BestDayDate is the
// date of the first occurrence of the maximum total.
func (l *Log) ComputeStats() *Stats {
	if len(l.entries) == 0 {
		return nil
	}

	sum := 0
	best := l.entries[0]
	for _, e := range l.entries {
		sum += e.Total
		if e.Total > best.Total {
			best = e
		}
	}

	return &Stats{
		Average:     int(math.Round(float64(sum) / float64(len(l.entries)))),
		BestDay:     best.Total,
		BestDayDate: best.Date,
		TotalDays:   len(l.entries),
	}
}

// ComputeStreak counts consecutive calendar days with nonzero totals,
// walking backward from today. Today participates through its live
// total rather than the log, since the current day has not rolled
// over yet; a live total of zero breaks the chain immediately.
func (l *Log) ComputeStreak(today time.Time, todayTotal int) int {
	if todayTotal <= 0 {
		return 0
	}

	byDate := make(map[string]int, len(l.entries))
	for _, e := range l.entries {
		byDate[e.Date] = e.Total
	}

	streak := 1
	day := today.AddDate(0, 0, -1)

	for {
		total, ok := byDate[models.Day(day)]
		if !ok || total <= 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// ComputeByType sums each type's counts across the log plus today's
// live counts, producing lifetime-per-type totals for the history
// window.
func (l *Log) ComputeByType(types []models.ZikrType, todayCounts map[string]int, today time.Time) map[string]int {
	totals := make(map[string]int, len(types))
	for _, zt := range types {
		totals[zt.ID] = todayCounts[zt.ID]
	}

	day := models.Day(today)
	for _, e := range l.entries {
		if e.Date == day {
			// Today's slot comes from the live counts instead.
			continue
		}
		for _, zt := range types {
			totals[zt.ID] += e.Counts[zt.ID]
		}
	}

	return totals
}

// Point is one slot in a chart series.
type Point struct {
	Date  string
	Value int
	Label string
}

// ComputeTimeSeries returns the trailing periodDays days ending today,
// oldest first. Days without a history entry get value 0; today's
// slot always reflects the live total.
func (l *Log) ComputeTimeSeries(periodDays int, today time.Time, todayTotal int) []Point {
	byDate := make(map[string]int, len(l.entries))
	for _, e := range l.entries {
		byDate[e.Date] = e.Total
	}

	points := make([]Point, 0, periodDays)
	for i := periodDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := models.Day(day)

		value := byDate[date]
		if i == 0 {
			value = todayTotal
		}

		points = append(points, Point{
			Date:  date,
			Value: value,
			Label: day.Format("02.01"),
		})
	}

	return points
}
