package engine

import "github.com/donikhodjaev/misbaha/internal/models"

// CheckRollover archives the previous day and zeroes today's counters
// when the calendar date has changed since the last check, reporting
// whether a rollover happened. A calendar day is midnight-to-midnight
// in local time, not a rolling 24-hour window. Safe to re-run: with no
// date change it does nothing.
func (e *Engine) CheckRollover() bool {
	today := models.Day(e.now())
	if e.lastDate == today {
		return false
	}

	if e.lastDate != "" {
		// Archive the day that just ended with its final totals.
		// Days without activity get no entry.
		if e.todayTotal > 0 {
			e.log.Upsert(e.lastDate, e.todayTotal, e.today)
			e.persistHistory()
		}

		for id := range e.today {
			e.today[id] = 0
		}
		e.todayTotal = 0
		e.persistToday()
	}

	e.lastDate = today
	e.persistLastDate()
	return true
}
