package syncer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/donikhodjaev/misbaha/internal/engine"
	"github.com/donikhodjaev/misbaha/internal/models"
)

// FormatError reports an import payload that is not valid JSON or not
// shaped like an export. The import is aborted with no state change.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid import format: %s", e.Reason)
}

// IsFormat reports whether err is (or wraps) a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// importPayload mirrors Payload with pointer fields so that absent
// keys are distinguishable from zero values. An absent field leaves
// the corresponding state untouched.
type importPayload struct {
	TodayCount   *int                  `json:"todayCount"`
	TotalAllTime *int                  `json:"totalAllTime"`
	StreakDays   *int                  `json:"streakDays"`
	DailyGoal    *int                  `json:"dailyGoal"`
	History      []models.HistoryEntry `json:"history"`
	Achievements []string              `json:"achievements"`
	Counts       map[string]int        `json:"counts"`
	TodayCounts  map[string]int        `json:"todayCounts"`
}

// Import decodes r and applies it to the engine. The payload is fully
// decoded and checked before anything is applied, so a malformed
// import never partially mutates state.
func Import(r io.Reader, eng *engine.Engine) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return &FormatError{Reason: err.Error()}
	}

	for _, entry := range payload.History {
		if entry.Date == "" {
			return &FormatError{Reason: "history entry without a date"}
		}
		if entry.Total < 0 {
			return &FormatError{Reason: fmt.Sprintf("history entry %s has a negative total", entry.Date)}
		}
	}

	eng.ApplyImport(engine.ImportData{
		TodayCount:   payload.TodayCount,
		TotalAllTime: payload.TotalAllTime,
		StreakDays:   payload.StreakDays,
		DailyGoal:    payload.DailyGoal,
		History:      payload.History,
		Achievements: payload.Achievements,
		Counts:       payload.Counts,
		TodayCounts:  payload.TodayCounts,
	})

	return nil
}
