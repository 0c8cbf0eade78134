// Package engine owns the mutable counter state: per-type lifetime
// (session) counts, today's counts, the daily goal, history,
// achievements and settings. All mutations go through it and are
// written through to the store; storage failures are logged and never
// crash the app.
package engine

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/donikhodjaev/misbaha/internal/achievements"
	"github.com/donikhodjaev/misbaha/internal/arabic"
	"github.com/donikhodjaev/misbaha/internal/history"
	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/storage"
	"github.com/donikhodjaev/misbaha/internal/validation"
)

// MilestoneInterval is the lifetime-count interval that triggers the
// stronger haptic pulse. 33 repetitions is one round of a misbaha.
const MilestoneInterval = 33

type Engine struct {
	store storage.Adapter
	now   func() time.Time

	// loaded gates write-through saves so that hydration itself is
	// never re-persisted as if it were a user mutation.
	loaded bool

	types    []models.ZikrType
	activeID string

	lifetime   map[string]int // per-type session counts, reset by ResetSession
	today      map[string]int // per-type today counts, reset on rollover
	todayTotal int

	totalAllTime      int
	goalAchievedCount int

	settings models.Settings
	log      *history.Log
	unlocked []string // achievement ids in unlock order
	lastDate string
	deviceID string

	sessionStart map[string]time.Time
}

// New creates an engine over a loaded store. Call Hydrate before any
// mutation.
func New(store storage.Adapter) *Engine {
	return &Engine{
		store:        store,
		now:          time.Now,
		lifetime:     make(map[string]int),
		today:        make(map[string]int),
		log:          history.FromEntries(nil),
		sessionStart: make(map[string]time.Time),
	}
}

// SetClock overrides the engine's wall clock. Tests use it to drive
// day rollover.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Now reports the engine's current time, honoring any test clock.
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// Types returns the current zikr type set.
func (e *Engine) Types() []models.ZikrType {
	out := make([]models.ZikrType, len(e.types))
	copy(out, e.types)
	return out
}

// Active returns the selected type. ok=false only when the type set
// is empty.
func (e *Engine) Active() (models.ZikrType, bool) {
	for _, zt := range e.types {
		if zt.ID == e.activeID {
			return zt, true
		}
	}
	if len(e.types) > 0 {
		return e.types[0], true
	}
	return models.ZikrType{}, false
}

func (e *Engine) knownType(id string) bool {
	for _, zt := range e.types {
		if zt.ID == id {
			return true
		}
	}
	return false
}

// SelectType makes id the active type.
func (e *Engine) SelectType(id string) error {
	for _, zt := range e.types {
		if zt.ID == id {
			e.activeID = id
			e.persistActive()
			return nil
		}
	}
	return fmt.Errorf("unknown zikr type: %s", id)
}

// Count returns the session count for a type.
func (e *Engine) Count(id string) int {
	return e.lifetime[id]
}

// TodayCount returns today's count for a type.
func (e *Engine) TodayCount(id string) int {
	return e.today[id]
}

// TodayTotal returns today's all-type total.
func (e *Engine) TodayTotal() int {
	return e.todayTotal
}

// TotalAllTime returns the lifetime total across all types.
func (e *Engine) TotalAllTime() int {
	return e.totalAllTime
}

// GoalAchievedCount returns how many days the daily goal was reached.
func (e *Engine) GoalAchievedCount() int {
	return e.goalAchievedCount
}

// Settings returns the current settings.
func (e *Engine) Settings() models.Settings {
	return e.settings
}

// History returns the daily history log.
func (e *Engine) History() *history.Log {
	return e.log
}

// DeviceID identifies this install in sync payloads.
func (e *Engine) DeviceID() string {
	return e.deviceID
}

// Unlocked returns the unlocked achievement ids in unlock order.
func (e *Engine) Unlocked() []string {
	out := make([]string, len(e.unlocked))
	copy(out, e.unlocked)
	return out
}

func (e *Engine) unlockedSet() map[string]bool {
	set := make(map[string]bool, len(e.unlocked))
	for _, id := range e.unlocked {
		set[id] = true
	}
	return set
}

// Streak returns the current consecutive-day streak including today's
// live total.
func (e *Engine) Streak() int {
	return e.log.ComputeStreak(e.now(), e.todayTotal)
}

// LifetimeCounts returns a copy of the per-type session counts.
func (e *Engine) LifetimeCounts() map[string]int {
	return copyCounts(e.lifetime)
}

// TodayCounts returns a copy of today's per-type counts.
func (e *Engine) TodayCounts() map[string]int {
	return copyCounts(e.today)
}

func copyCounts(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for id, n := range src {
		out[id] = n
	}
	return out
}

// TapResult reports the side effects of a single increment so the
// presentation layer can drive haptics and notifications.
type TapResult struct {
	Count       int // active type's session count after the tap
	TodayTotal  int
	Milestone   bool // session count hit a multiple of 33
	GoalReached bool // today total reached the goal exactly
	Unlocked    []achievements.Achievement
}

// Increment counts one repetition of the active type.
func (e *Engine) Increment() TapResult {
	e.CheckRollover()

	id := e.activeID
	if _, ok := e.sessionStart[id]; !ok && e.lifetime[id] == 0 {
		e.sessionStart[id] = e.now()
	}

	e.lifetime[id]++
	e.today[id]++
	e.todayTotal++
	e.totalAllTime++

	result := TapResult{
		Count:      e.lifetime[id],
		TodayTotal: e.todayTotal,
		Milestone:  e.lifetime[id]%MilestoneInterval == 0,
	}

	// Exact equality: reaching the goal fires once per upward
	// crossing and is not retriggered past it.
	if e.todayTotal == e.settings.DailyGoal {
		result.GoalReached = true
		e.goalAchievedCount++
		e.persistGoalAchieved()
	}

	result.Unlocked = e.evaluateAchievements()

	e.persistCounts()
	e.persistToday()

	return result
}

// Decrement undoes one repetition of the active type. No-op when the
// session count is already zero; no counter goes negative.
func (e *Engine) Decrement() TapResult {
	e.CheckRollover()

	id := e.activeID
	if e.lifetime[id] <= 0 {
		return TapResult{Count: 0, TodayTotal: e.todayTotal}
	}

	e.lifetime[id]--
	if e.today[id] > 0 {
		e.today[id]--
	}
	if e.todayTotal > 0 {
		e.todayTotal--
	}
	if e.totalAllTime > 0 {
		e.totalAllTime--
	}

	if e.lifetime[id] == 0 {
		delete(e.sessionStart, id)
	}

	e.persistCounts()
	e.persistToday()

	return TapResult{Count: e.lifetime[id], TodayTotal: e.todayTotal}
}

// SessionDuration returns how long the active type's current session
// has been running, or 0 when no session is active.
func (e *Engine) SessionDuration() time.Duration {
	start, ok := e.sessionStart[e.activeID]
	if !ok {
		return 0
	}
	return e.now().Sub(start)
}

// SetDailyGoal updates the goal. Changing the goal never retroactively
// fires the goal-reached event.
func (e *Engine) SetDailyGoal(goal int) error {
	if err := validation.Goal(goal); err != nil {
		return err
	}
	e.settings.DailyGoal = goal
	e.persistSettings()
	return nil
}

// UpdateSettings validates and applies new settings.
func (e *Engine) UpdateSettings(s models.Settings) error {
	if err := validation.Goal(s.DailyGoal); err != nil {
		return err
	}
	if err := validation.ClockTime(s.NotificationTime); err != nil {
		return err
	}
	if err := validation.Interval(s.NotificationInterval); err != nil {
		return err
	}
	if !models.ValidTheme(s.Theme) {
		return fmt.Errorf("unknown theme: %s", s.Theme)
	}
	if !models.ValidLanguage(s.Language) {
		return fmt.Errorf("unknown language: %s", s.Language)
	}

	e.settings = s
	e.persistSettings()
	return nil
}

// AddCustomType creates a user-defined type and selects it. A blank
// arabic text falls back to an auto-suggestion, then to the name.
func (e *Engine) AddCustomType(name, arabicText string) (models.ZikrType, error) {
	if err := validation.Name(name); err != nil {
		return models.ZikrType{}, err
	}

	name = strings.TrimSpace(name)
	arabicText = strings.TrimSpace(arabicText)
	if arabicText == "" {
		arabicText = arabic.Suggest(name, e.types)
	}
	if arabicText == "" {
		arabicText = name
	}

	zt := models.ZikrType{
		ID:     models.NewCustomTypeID(e.now()),
		Name:   name,
		Arabic: arabicText,
		Custom: true,
	}

	e.types = append(e.types, zt)
	if _, ok := e.lifetime[zt.ID]; !ok {
		e.lifetime[zt.ID] = 0
	}
	if _, ok := e.today[zt.ID]; !ok {
		e.today[zt.ID] = 0
	}
	e.activeID = zt.ID

	e.persistTypes()
	e.persistActive()
	e.persistCounts()
	e.persistToday()

	return zt, nil
}

// DeleteCustomType removes a user-defined type. Builtin types are
// never deleted; the call is a silent no-op for them. When the active
// type is deleted, selection falls back to the first remaining type.
func (e *Engine) DeleteCustomType(id string) {
	index := -1
	for i, zt := range e.types {
		if zt.ID == id && zt.Custom {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	e.types = append(e.types[:index], e.types[index+1:]...)
	delete(e.sessionStart, id)

	if e.activeID == id {
		if len(e.types) > 0 {
			e.activeID = e.types[0].ID
		} else {
			e.activeID = ""
		}
		e.persistActive()
	}

	e.persistTypes()
}

// ResetSession zeroes every type's session count. Today's counts,
// totals and history are untouched, so goal progress and the history
// view survive a session reset.
func (e *Engine) ResetSession() {
	for id := range e.lifetime {
		e.lifetime[id] = 0
	}
	e.sessionStart = make(map[string]time.Time)
	e.persistCounts()
}

// ResetAll erases everything: counts, history, achievements, the
// persistent store, and restores the builtin types and default
// settings.
func (e *Engine) ResetAll() {
	if err := e.store.Clear(); err != nil {
		e.warnf("failed to clear storage: %v", err)
	}

	e.types = models.DefaultZikrTypes()
	e.activeID = e.types[0].ID
	e.lifetime = make(map[string]int)
	e.today = make(map[string]int)
	e.todayTotal = 0
	e.totalAllTime = 0
	e.goalAchievedCount = 0
	e.settings = models.DefaultSettings()
	e.log.Reset()
	e.unlocked = nil
	e.sessionStart = make(map[string]time.Time)
	e.lastDate = models.Day(e.now())
	e.seedCounts()

	e.persistAll()
}

// evaluateAchievements runs the rule table against current progress
// and persists any newly unlocked ids.
func (e *Engine) evaluateAchievements() []achievements.Achievement {
	fresh := achievements.Evaluate(achievements.Progress{
		TotalAllTime:      e.totalAllTime,
		StreakDays:        e.Streak(),
		GoalAchievedCount: e.goalAchievedCount,
	}, e.unlockedSet())

	if len(fresh) == 0 {
		return nil
	}

	for _, a := range fresh {
		e.unlocked = append(e.unlocked, a.ID)
	}
	e.persistAchievements()

	return fresh
}

// seedCounts ensures every known type has an entry in both count
// maps. Missing entries read as zero either way; seeding keeps the
// persisted maps complete.
func (e *Engine) seedCounts() {
	for _, zt := range e.types {
		if _, ok := e.lifetime[zt.ID]; !ok {
			e.lifetime[zt.ID] = 0
		}
		if _, ok := e.today[zt.ID]; !ok {
			e.today[zt.ID] = 0
		}
	}
}
