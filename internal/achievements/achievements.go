// Package achievements evaluates the fixed unlock rule table. Unlocks
// are monotonic: once an id is in the set it is never revoked.
package achievements

// Progress is the input every rule is evaluated against.
type Progress struct {
	TotalAllTime      int
	StreakDays        int
	GoalAchievedCount int
}

// Achievement is one unlockable definition.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	unlocked    func(Progress) bool
}

// All returns the rule table in display order.
func All() []Achievement {
	return []Achievement{
		{
			ID:          "first_steps",
			Title:       "Первые шаги",
			Description: "33 зикра всего",
			unlocked:    func(p Progress) bool { return p.TotalAllTime >= 33 },
		},
		{
			ID:          "dedicated",
			Title:       "Усердие",
			Description: "100 зикров всего",
			unlocked:    func(p Progress) bool { return p.TotalAllTime >= 100 },
		},
		{
			ID:          "seeker",
			Title:       "Искатель",
			Description: "1000 зикров всего",
			unlocked:    func(p Progress) bool { return p.TotalAllTime >= 1000 },
		},
		{
			ID:          "devoted",
			Title:       "Преданность",
			Description: "10000 зикров всего",
			unlocked:    func(p Progress) bool { return p.TotalAllTime >= 10000 },
		},
		{
			ID:          "week_streak",
			Title:       "Неделя подряд",
			Description: "7 дней без перерыва",
			unlocked:    func(p Progress) bool { return p.StreakDays >= 7 },
		},
		{
			ID:          "month_streak",
			Title:       "Месяц подряд",
			Description: "30 дней без перерыва",
			unlocked:    func(p Progress) bool { return p.StreakDays >= 30 },
		},
		{
			ID:          "goal_getter",
			Title:       "Целеустремлённость",
			Description: "Дневная цель достигнута 10 раз",
			unlocked:    func(p Progress) bool { return p.GoalAchievedCount >= 10 },
		},
	}
}

// ByID looks up a definition, ok=false for unknown ids (e.g. from an
// import produced by a newer version).
func ByID(id string) (Achievement, bool) {
	for _, a := range All() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Evaluate returns the ids newly crossed by progress, in table order.
// Already-unlocked ids are skipped and never re-reported.
func Evaluate(progress Progress, unlocked map[string]bool) []Achievement {
	var fresh []Achievement
	for _, a := range All() {
		if unlocked[a.ID] {
			continue
		}
		if a.unlocked(progress) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
