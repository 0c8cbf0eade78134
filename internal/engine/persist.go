package engine

import (
	"encoding/json"
	"strconv"

	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

// Write-through helpers. Each persists one slice of state and treats
// failure as non-fatal: log and move on, in-memory state stays
// authoritative for the rest of the run. All are gated on the loaded
// flag so hydration never writes back what it just read.

func (e *Engine) setKey(key, value string) {
	if !e.loaded {
		return
	}
	if err := e.store.Set(key, value); err != nil {
		e.warnf("failed to save %s: %v", key, err)
	}
}

func (e *Engine) setJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		e.warnf("failed to encode %s: %v", key, err)
		return
	}
	e.setKey(key, string(data))
}

func (e *Engine) persistCounts() {
	e.setJSON(storage.KeyLifetimeCounts, e.lifetime)
	e.setKey(storage.KeyTotalAllTime, strconv.Itoa(e.totalAllTime))
}

// persistToday saves today's running totals, including date-suffixed
// snapshot keys, and keeps the current day's history entry live so
// that killing the process mid-day loses nothing from the history
// view.
func (e *Engine) persistToday() {
	date := models.Day(e.now())
	total := strconv.Itoa(e.todayTotal)

	e.setKey(storage.KeyTodayTotal, total)
	e.setKey(storage.TodayTotalKeyFor(date), total)
	e.setJSON(storage.KeyTodayCounts, e.today)
	e.setJSON(storage.TodayCountsKeyFor(date), e.today)

	if e.todayTotal > 0 {
		e.log.Upsert(date, e.todayTotal, e.today)
		e.persistHistory()
	}
}

func (e *Engine) persistHistory() {
	e.setJSON(storage.KeyHistory, e.log.Entries())
}

func (e *Engine) persistTypes() {
	e.setJSON(storage.KeyZikrTypes, e.types)
}

func (e *Engine) persistActive() {
	e.setKey(storage.KeyActiveZikr, e.activeID)
}

func (e *Engine) persistAchievements() {
	e.setJSON(storage.KeyAchievements, e.unlocked)
}

func (e *Engine) persistGoalAchieved() {
	e.setKey(storage.KeyGoalAchievedCount, strconv.Itoa(e.goalAchievedCount))
}

func (e *Engine) persistLastDate() {
	e.setKey(storage.KeyLastDate, e.lastDate)
}

func (e *Engine) persistSettings() {
	s := e.settings
	e.setKey(storage.KeyDailyGoal, strconv.Itoa(s.DailyGoal))
	e.setKey(storage.KeyVibrationEnabled, strconv.FormatBool(s.VibrationEnabled))
	e.setKey(storage.KeySoundEnabled, strconv.FormatBool(s.SoundEnabled))
	e.setKey(storage.KeyTheme, string(s.Theme))
	e.setKey(storage.KeyLanguage, string(s.Language))
	e.setKey(storage.KeyNotificationsEnabled, strconv.FormatBool(s.NotificationsEnabled))
	e.setKey(storage.KeyNotificationTime, s.NotificationTime)
	e.setKey(storage.KeyNotificationInterval, strconv.Itoa(s.NotificationInterval))
}

// persistAll rewrites every key. Used after ResetAll cleared the
// store and by import, which replaces several slices of state at
// once.
func (e *Engine) persistAll() {
	e.persistTypes()
	e.persistActive()
	e.persistSettings()
	e.persistCounts()
	e.persistToday()
	e.persistHistory()
	e.persistAchievements()
	e.persistGoalAchieved()
	e.persistLastDate()
	e.setKey(storage.KeyDeviceID, e.deviceID)
}
