// Package syncer projects engine state into the JSON payload shared
// with the companion Telegram bot and the file export/import feature.
// The payload shape is the sole contract with both: evolution is
// additive only, since an old export may later be re-imported.
package syncer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/donikhodjaev/misbaha/internal/engine"
	"github.com/donikhodjaev/misbaha/internal/models"
)

// Payload is a snapshot of counter, history and achievement state.
type Payload struct {
	TodayCount   int                   `json:"todayCount"`
	TotalAllTime int                   `json:"totalAllTime"`
	StreakDays   int                   `json:"streakDays"`
	DailyGoal    int                   `json:"dailyGoal"`
	History      []models.HistoryEntry `json:"history"`
	Achievements []string              `json:"achievements"`
	Counts       map[string]int        `json:"counts"`
	TodayCounts  map[string]int        `json:"todayCounts"`
	DeviceID     string                `json:"deviceId,omitempty"`
	LastSync     string                `json:"lastSync"`
}

// Build assembles a payload from settled engine state. It is a pure
// projection: building a payload never mutates the engine.
func Build(eng *engine.Engine, now time.Time) Payload {
	achievementIDs := eng.Unlocked()
	if achievementIDs == nil {
		achievementIDs = []string{}
	}

	return Payload{
		TodayCount:   eng.TodayTotal(),
		TotalAllTime: eng.TotalAllTime(),
		StreakDays:   eng.Streak(),
		DailyGoal:    eng.Settings().DailyGoal,
		History:      eng.History().Entries(),
		Achievements: achievementIDs,
		Counts:       eng.LifetimeCounts(),
		TodayCounts:  eng.TodayCounts(),
		DeviceID:     eng.DeviceID(),
		LastSync:     now.UTC().Format(time.RFC3339),
	}
}

// Export writes an indented payload.
func Export(w io.Writer, payload Payload) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return nil
}
