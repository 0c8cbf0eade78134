package statsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/donikhodjaev/misbaha/internal/history"
	"github.com/donikhodjaev/misbaha/internal/locale"
)

const barWidth = 24

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

// Data is the snapshot the stats tab renders.
type Data struct {
	TodayTotal   int
	DailyGoal    int
	TotalAllTime int
	Streak       int
	Stats        *history.Stats
	Series       []history.Point
	ByType       []TypeTotal
}

// TypeTotal pairs a display name with a lifetime total.
type TypeTotal struct {
	Name  string
	Total int
}

type Model struct {
	viewport viewport.Model
	data     Data
	strings  locale.Strings
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetData(data Data, strings locale.Strings) {
	m.data = data
	m.strings = strings
	m.render()
}

func (m *Model) render() {
	var b strings.Builder

	row := func(label string, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row(m.strings.Today, fmt.Sprintf("%d / %d", m.data.TodayTotal, m.data.DailyGoal))
	row(m.strings.AllTime, fmt.Sprintf("%d", m.data.TotalAllTime))
	row(m.strings.Streak, fmt.Sprintf("%d %s", m.data.Streak, m.strings.StreakDays))

	if m.data.Stats != nil {
		row(m.strings.Average, fmt.Sprintf("%d", m.data.Stats.Average))
		row(m.strings.BestDay, fmt.Sprintf("%d (%s)", m.data.Stats.BestDay, m.data.Stats.BestDayDate))
		row(m.strings.DaysRecorded, fmt.Sprintf("%d", m.data.Stats.TotalDays))
	}

	if len(m.data.Series) > 0 {
		b.WriteString("\n")
		max := 0
		for _, p := range m.data.Series {
			if p.Value > max {
				max = p.Value
			}
		}
		for _, p := range m.data.Series {
			bar := 0
			if max > 0 {
				bar = p.Value * barWidth / max
			}
			if p.Value > 0 && bar == 0 {
				bar = 1
			}
			b.WriteString(fmt.Sprintf("%s %s %d\n",
				labelStyle.Render(p.Label),
				barStyle.Render(strings.Repeat("█", bar)),
				p.Value))
		}
	} else {
		b.WriteString("\n" + m.strings.NoHistory + "\n")
	}

	if len(m.data.ByType) > 0 {
		b.WriteString("\n")
		for _, tt := range m.data.ByType {
			row(tt.Name, fmt.Sprintf("%d", tt.Total))
		}
	}

	m.viewport.SetContent(b.String())
}
