package models

// Theme identifies one of the closed set of color themes.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
)

// Language identifies one of the closed set of UI languages.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// Settings holds the user-configurable preferences.
type Settings struct {
	DailyGoal            int      `json:"daily_goal"`
	VibrationEnabled     bool     `json:"vibration_enabled"`
	SoundEnabled         bool     `json:"sound_enabled"`
	Theme                Theme    `json:"theme"`
	Language             Language `json:"language"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	NotificationTime     string   `json:"notification_time"`     // HH:MM
	NotificationInterval int      `json:"notification_interval"` // hours, 0 = off
}

const (
	DefaultDailyGoal = 100
	MinDailyGoal     = 1
	MaxDailyGoal     = 10000
)

// DefaultSettings returns the settings applied on first run and after
// a full reset.
func DefaultSettings() Settings {
	return Settings{
		DailyGoal:            DefaultDailyGoal,
		VibrationEnabled:     true,
		SoundEnabled:         true,
		Theme:                ThemeDefault,
		Language:             LanguageRussian,
		NotificationsEnabled: false,
		NotificationTime:     "09:00",
		NotificationInterval: 0,
	}
}

// ValidTheme reports whether t is a known theme id.
func ValidTheme(t Theme) bool {
	switch t {
	case ThemeDefault, ThemeDark, ThemeLight:
		return true
	}
	return false
}

// ValidLanguage reports whether l is a known language id.
func ValidLanguage(l Language) bool {
	switch l {
	case LanguageRussian, LanguageEnglish:
		return true
	}
	return false
}
