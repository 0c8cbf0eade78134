// Package locale holds the closed set of UI string tables. There is
// no runtime plugin mechanism: a language id selects one of the
// static tables, unknown ids fall back to Russian.
package locale

import "github.com/donikhodjaev/misbaha/internal/models"

// Strings is the table of translatable UI text.
type Strings struct {
	AppTitle       string
	Session        string
	Today          string
	Goal           string
	Streak         string
	StreakDays     string
	AllTime        string
	Average        string
	BestDay        string
	DaysRecorded   string
	GoalReached    string
	Achievement    string
	ConfirmReset   string
	ConfirmWipe    string
	ConfirmWipeTwo string
	NoHistory      string
	PaceLabel      string
}

var tables = map[models.Language]Strings{
	models.LanguageRussian: {
		AppTitle:       "Счетчик Зикра",
		Session:        "Текущая сессия",
		Today:          "Сегодня",
		Goal:           "Цель",
		Streak:         "Серия",
		StreakDays:     "дней подряд",
		AllTime:        "Всего",
		Average:        "Среднее в день",
		BestDay:        "Лучший день",
		DaysRecorded:   "Дней записано",
		GoalReached:    "Вы достигли цели на сегодня!",
		Achievement:    "Новое достижение",
		ConfirmReset:   "Сбросить текущую сессию?",
		ConfirmWipe:    "Сбросить все данные? Это действие нельзя отменить.",
		ConfirmWipeTwo: "Точно удалить всю историю и достижения?",
		NoHistory:      "Пока нет данных",
		PaceLabel:      "зикр/мин",
	},
	models.LanguageEnglish: {
		AppTitle:       "Zikr Counter",
		Session:        "Current session",
		Today:          "Today",
		Goal:           "Goal",
		Streak:         "Streak",
		StreakDays:     "days in a row",
		AllTime:        "All time",
		Average:        "Average per day",
		BestDay:        "Best day",
		DaysRecorded:   "Days recorded",
		GoalReached:    "You reached today's goal!",
		Achievement:    "New achievement",
		ConfirmReset:   "Reset the current session?",
		ConfirmWipe:    "Reset all data? This cannot be undone.",
		ConfirmWipeTwo: "Really erase all history and achievements?",
		NoHistory:      "No data yet",
		PaceLabel:      "zikr/min",
	},
}

// For returns the string table for a language.
func For(lang models.Language) Strings {
	if table, ok := tables[lang]; ok {
		return table
	}
	return tables[models.LanguageRussian]
}
