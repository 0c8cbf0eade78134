package engine

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"github.com/donikhodjaev/misbaha/internal/history"
	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

// Hydrate populates in-memory state from the store. Every key is read
// independently; an absent or unparseable value falls back to its
// default, never a fatal error. Only after hydration completes does
// the engine persist mutations.
func (e *Engine) Hydrate() {
	defaults := models.DefaultSettings()

	e.types = e.readTypes()
	e.activeID = e.readString(storage.KeyActiveZikr, "")
	if !e.knownType(e.activeID) {
		if e.activeID != "" {
			e.warnf("ignoring unknown active zikr id %q", e.activeID)
		}
		e.activeID = ""
		if len(e.types) > 0 {
			e.activeID = e.types[0].ID
		}
	}

	e.settings = models.Settings{
		DailyGoal:            e.readInt(storage.KeyDailyGoal, defaults.DailyGoal),
		VibrationEnabled:     e.readBool(storage.KeyVibrationEnabled, defaults.VibrationEnabled),
		SoundEnabled:         e.readBool(storage.KeySoundEnabled, defaults.SoundEnabled),
		Theme:                models.Theme(e.readString(storage.KeyTheme, string(defaults.Theme))),
		Language:             models.Language(e.readString(storage.KeyLanguage, string(defaults.Language))),
		NotificationsEnabled: e.readBool(storage.KeyNotificationsEnabled, defaults.NotificationsEnabled),
		NotificationTime:     e.readString(storage.KeyNotificationTime, defaults.NotificationTime),
		NotificationInterval: e.readInt(storage.KeyNotificationInterval, defaults.NotificationInterval),
	}
	if !models.ValidTheme(e.settings.Theme) {
		e.settings.Theme = defaults.Theme
	}
	if !models.ValidLanguage(e.settings.Language) {
		e.settings.Language = defaults.Language
	}

	e.lifetime = e.readCounts(storage.KeyLifetimeCounts)
	e.today = e.readCounts(storage.KeyTodayCounts)
	e.todayTotal = e.readInt(storage.KeyTodayTotal, 0)
	e.totalAllTime = e.readInt(storage.KeyTotalAllTime, 0)
	e.goalAchievedCount = e.readInt(storage.KeyGoalAchievedCount, 0)
	e.lastDate = e.readString(storage.KeyLastDate, "")
	e.unlocked = e.readStrings(storage.KeyAchievements)
	e.log = history.FromEntries(e.readHistory())

	e.seedCounts()

	e.deviceID = e.readString(storage.KeyDeviceID, "")
	if e.deviceID == "" {
		e.deviceID = uuid.New().String()
		if err := e.store.Set(storage.KeyDeviceID, e.deviceID); err != nil {
			e.warnf("failed to persist device id: %v", err)
		}
	}

	e.loaded = true

	// Archive a finished day before the first mutation arrives.
	e.CheckRollover()
}

func (e *Engine) readString(key, fallback string) string {
	value, ok, err := e.store.Get(key)
	if err != nil {
		e.warnf("failed to read %s: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return value
}

func (e *Engine) readInt(key string, fallback int) int {
	value, ok, err := e.store.Get(key)
	if err != nil {
		e.warnf("failed to read %s: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		e.warnf("ignoring malformed value for %s: %q", key, value)
		return fallback
	}
	return n
}

func (e *Engine) readBool(key string, fallback bool) bool {
	value, ok, err := e.store.Get(key)
	if err != nil {
		e.warnf("failed to read %s: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return value == "true"
}

func (e *Engine) readCounts(key string) map[string]int {
	counts := make(map[string]int)
	value, ok, err := e.store.Get(key)
	if err != nil {
		e.warnf("failed to read %s: %v", key, err)
		return counts
	}
	if !ok {
		return counts
	}
	if err := json.Unmarshal([]byte(value), &counts); err != nil {
		e.warnf("ignoring malformed value for %s: %v", key, err)
		return make(map[string]int)
	}
	for id, n := range counts {
		if n < 0 {
			counts[id] = 0
		}
	}
	return counts
}

func (e *Engine) readStrings(key string) []string {
	value, ok, err := e.store.Get(key)
	if err != nil {
		e.warnf("failed to read %s: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		e.warnf("ignoring malformed value for %s: %v", key, err)
		return nil
	}
	return out
}

func (e *Engine) readTypes() []models.ZikrType {
	value, ok, err := e.store.Get(storage.KeyZikrTypes)
	if err != nil {
		e.warnf("failed to read %s: %v", storage.KeyZikrTypes, err)
		return models.DefaultZikrTypes()
	}
	if !ok {
		return models.DefaultZikrTypes()
	}
	var types []models.ZikrType
	if err := json.Unmarshal([]byte(value), &types); err != nil || len(types) == 0 {
		e.warnf("ignoring malformed value for %s", storage.KeyZikrTypes)
		return models.DefaultZikrTypes()
	}
	return types
}

func (e *Engine) readHistory() []models.HistoryEntry {
	value, ok, err := e.store.Get(storage.KeyHistory)
	if err != nil {
		e.warnf("failed to read %s: %v", storage.KeyHistory, err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []models.HistoryEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		e.warnf("ignoring malformed value for %s: %v", storage.KeyHistory, err)
		return nil
	}
	return entries
}
