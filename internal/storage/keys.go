package storage

// Persisted key space. Values are strings; structured ones are
// JSON-encoded. Missing or unparseable keys always fall back to
// defaults at hydration, never a fatal error.
const (
	KeyZikrTypes            = "zikrTypes"            // JSON []models.ZikrType
	KeyActiveZikr           = "activeZikr"           // type id
	KeyDailyGoal            = "dailyGoal"            // integer
	KeyVibrationEnabled     = "vibrationEnabled"     // "true" / "false"
	KeySoundEnabled         = "soundEnabled"         // "true" / "false"
	KeyTheme                = "theme"                // theme id
	KeyLanguage             = "language"             // language id
	KeyNotificationsEnabled = "notificationsEnabled" // "true" / "false"
	KeyNotificationTime     = "notificationTime"     // HH:MM
	KeyNotificationInterval = "notificationInterval" // hours, integer >= 0
	KeyLifetimeCounts       = "zikrCounts"           // JSON map[string]int
	KeyTodayTotal           = "todayZikr"            // integer
	KeyTodayCounts          = "todayZikrCounts"      // JSON map[string]int
	KeyHistory              = "zikrHistory"          // JSON []models.HistoryEntry, <= 30
	KeyAchievements         = "achievements"         // JSON []string
	KeyTotalAllTime         = "totalAllTime"         // integer
	KeyGoalAchievedCount    = "goalAchievedCount"    // integer
	KeyLastDate             = "lastDate"             // YYYY-MM-DD
	KeyDeviceID             = "deviceID"             // uuid
)

// TodayTotalKeyFor returns the date-suffixed daily snapshot key for a
// day's running total.
func TodayTotalKeyFor(date string) string {
	return KeyTodayTotal + "_" + date
}

// TodayCountsKeyFor returns the date-suffixed daily snapshot key for a
// day's per-type counts.
func TodayCountsKeyFor(date string) string {
	return KeyTodayCounts + "_" + date
}
