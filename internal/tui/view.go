package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCounter:
		content = m.viewCounter()
	case StateTypes:
		content = m.styles.Doc.Render(m.typeList.View())
	case StateStats:
		content = m.styles.Doc.Render(m.statsView.View())
	case StateSettings:
		content = m.viewSettings()
	case StateAddType, StateEditSettings:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirm(m.styles.Danger.Render("Delete this zikr type?"))
	case StateConfirmReset:
		content = m.viewConfirm(m.strings.ConfirmReset)
	case StateConfirmWipe:
		content = m.viewConfirm(m.styles.Danger.Render(m.strings.ConfirmWipe))
	case StateConfirmWipeTwo:
		content = m.viewConfirm(m.styles.Danger.Render(m.strings.ConfirmWipeTwo))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.styles.Status.Render(m.status),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{m.strings.AppTitle, "Types", "Stats", "Settings"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCounter() string {
	active, _ := m.eng.Active()
	count := m.eng.Count(active.ID)
	goal := m.eng.Settings().DailyGoal
	todayTotal := m.eng.TodayTotal()

	percent := float64(todayTotal) / float64(goal)
	if percent > 1 {
		percent = 1
	}

	lines := []string{
		m.styles.Arabic.Render(active.Arabic),
		m.styles.Label.Render(active.Name),
		"",
		m.styles.Count.Render(bigCount(count)),
		"",
		fmt.Sprintf("%s: %d / %d", m.strings.Today, todayTotal, goal),
		m.goalBar.ViewAs(percent),
		"",
		fmt.Sprintf("%s: %d   %s: %d %s",
			m.strings.AllTime, m.eng.TotalAllTime(),
			m.strings.Streak, m.eng.Streak(), m.strings.StreakDays),
	}

	if pace := m.paceLine(count); pace != "" {
		lines = append(lines, pace)
	}

	return lipgloss.Place(m.width, m.height-6,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

// paceLine shows session length and repetitions per minute once a
// session is underway.
func (m Model) paceLine(count int) string {
	d := m.eng.SessionDuration()
	if d < time.Second || count == 0 {
		return ""
	}
	perMin := float64(count) / d.Minutes()
	return m.styles.Label.Render(fmt.Sprintf("%s  %.1f %s",
		d.Round(time.Second), perMin, m.strings.PaceLabel))
}

func (m Model) viewSettings() string {
	s := m.eng.Settings()

	rows := [][2]string{
		{m.strings.Goal, fmt.Sprintf("%d", s.DailyGoal)},
		{"Vibration", onOff(s.VibrationEnabled)},
		{"Sound", onOff(s.SoundEnabled)},
		{"Theme", string(s.Theme)},
		{"Language", string(s.Language)},
		{"Reminders", onOff(s.NotificationsEnabled)},
		{"Reminder time", s.NotificationTime},
	}

	var b strings.Builder
	label := m.styles.Label.Width(16)
	for _, row := range rows {
		b.WriteString(label.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("e edit   W erase all data"))

	return m.styles.Doc.Render(b.String())
}

func (m Model) viewConfirm(prompt string) string {
	return lipgloss.Place(m.width, m.height-6,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			prompt,
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// bigCount renders the session count on a large block-digit face.
var bigDigits = map[rune][]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
}

func bigCount(n int) string {
	digits := fmt.Sprintf("%d", n)
	rows := make([]string, 3)
	for _, d := range digits {
		face, ok := bigDigits[d]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			rows[i] += face[i]
		}
	}
	return strings.Join(rows, "\n")
}
