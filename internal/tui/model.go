package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/donikhodjaev/misbaha/internal/engine"
	"github.com/donikhodjaev/misbaha/internal/locale"
	"github.com/donikhodjaev/misbaha/internal/syncer"
	"github.com/donikhodjaev/misbaha/internal/tui/components/statsview"
	"github.com/donikhodjaev/misbaha/internal/tui/components/typelist"
)

type SessionState int

const (
	StateCounter SessionState = iota
	StateTypes
	StateStats
	StateSettings
	StateAddType
	StateEditSettings
	StateConfirmDelete
	StateConfirmReset
	StateConfirmWipe
	StateConfirmWipeTwo
)

// tabCount covers the states reachable by tab cycling.
const tabCount = 4

const statsPeriodDays = 7

type TypeFormModel struct {
	Name   string
	Arabic string
}

type SettingsFormModel struct {
	Goal        string
	Vibration   bool
	Sound       bool
	Theme       string
	Language    string
	Notify      bool
	NotifyAt    string
	NotifyEvery string
}

type Model struct {
	eng       *engine.Engine
	storePath string
	relay     *syncer.Relay
	relayOK   bool

	state          SessionState
	keys           KeyMap
	help           help.Model
	styles         Styles
	strings        locale.Strings
	typeList       typelist.Model
	statsView      statsview.Model
	goalBar        progress.Model
	form           *huh.Form
	typeForm       *TypeFormModel
	settingsForm   *SettingsFormModel
	typeToDeleteID string

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(eng *engine.Engine, storePath string) Model {
	goalBar := progress.New(progress.WithDefaultGradient())
	goalBar.Width = 40

	m := Model{
		eng:       eng,
		storePath: storePath,
		state:     StateCounter,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    StylesFor(eng.Settings().Theme),
		strings:   locale.For(eng.Settings().Language),
		typeList:  typelist.New(nil, 0, 0),
		statsView: statsview.New(0, 0),
		goalBar:   goalBar,
	}

	if cfg, ok := syncer.LoadRelayConfig(storePath); ok {
		m.relay = syncer.NewRelay(cfg)
		m.relayOK = true
	}

	m.refreshTypes()
	m.refreshStats()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.relayOK {
		cmds = append(cmds, syncTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) refreshTypes() {
	active, _ := m.eng.Active()
	types := m.eng.Types()
	items := make([]typelist.Item, len(types))
	for i, zt := range types {
		items[i] = typelist.Item{
			Type:    zt,
			Session: m.eng.Count(zt.ID),
			Today:   m.eng.TodayCount(zt.ID),
			Active:  zt.ID == active.ID,
		}
	}
	m.typeList.SetItems(items)
}

func (m *Model) refreshStats() {
	byType := m.eng.History().ComputeByType(m.eng.Types(), m.eng.TodayCounts(), m.eng.Now())

	names := make(map[string]string)
	for _, zt := range m.eng.Types() {
		names[zt.ID] = zt.Name
	}
	ids := make([]string, 0, len(byType))
	for id := range byType {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	totals := make([]statsview.TypeTotal, 0, len(ids))
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		totals = append(totals, statsview.TypeTotal{Name: name, Total: byType[id]})
	}

	m.statsView.SetData(statsview.Data{
		TodayTotal:   m.eng.TodayTotal(),
		DailyGoal:    m.eng.Settings().DailyGoal,
		TotalAllTime: m.eng.TotalAllTime(),
		Streak:       m.eng.Streak(),
		Stats:        m.eng.History().ComputeStats(),
		Series:       m.eng.History().ComputeTimeSeries(statsPeriodDays, m.eng.Now(), m.eng.TodayTotal()),
		ByType:       totals,
	}, m.strings)
}

// applyLocaleTheme re-reads the style and string tables after a
// settings change.
func (m *Model) applyLocaleTheme() {
	m.styles = StylesFor(m.eng.Settings().Theme)
	m.strings = locale.For(m.eng.Settings().Language)
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type syncTickMsg time.Time

func syncTickCmd() tea.Cmd {
	return tea.Tick(syncer.AutoSyncInterval, func(t time.Time) tea.Msg { return syncTickMsg(t) })
}

type syncDoneMsg struct {
	err error
}
