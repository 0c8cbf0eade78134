package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/donikhodjaev/misbaha/internal/syncer"
	"github.com/donikhodjaev/misbaha/internal/tui/components/typelist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.typeList.SetSize(msg.Width-4, msg.Height-6)
		m.statsView.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tickMsg:
		// Keeps the session clock and rollover current even when idle.
		// A date change resets today's counters, so the cached views
		// must be rebuilt before they are shown again.
		if m.eng.CheckRollover() {
			m.refreshTypes()
			m.refreshStats()
		}
		return m, tickCmd()

	case syncTickMsg:
		return m, tea.Batch(m.syncCmd(), syncTickCmd())

	case syncDoneMsg:
		if msg.err != nil {
			m.setStatus("sync failed: %v", msg.err)
		}
		return m, nil

	case typelist.SelectMsg:
		if err := m.eng.SelectType(msg.ID); err == nil {
			m.refreshTypes()
			m.state = StateCounter
		}
		return m, nil

	case typelist.AddMsg:
		m.typeForm = &TypeFormModel{}
		m.form = newTypeForm(m.typeForm)
		m.state = StateAddType
		return m, m.form.Init()

	case typelist.DeleteMsg:
		m.typeToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateAddType, StateEditSettings:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateConfirmReset:
		return m.updateConfirmReset(msg)
	case StateConfirmWipe, StateConfirmWipeTwo:
		return m.updateConfirmWipe(msg)
	case StateTypes:
		return m.updateTypes(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil

	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil

	case key.Matches(keyMsg, m.keys.Count):
		if m.state == StateCounter {
			return m.handleTap()
		}

	case key.Matches(keyMsg, m.keys.Undo):
		if m.state == StateCounter {
			m.eng.Decrement()
			m.status = ""
			m.refreshStats()
			return m, nil
		}

	case key.Matches(keyMsg, m.keys.Reset):
		if m.state == StateCounter {
			m.state = StateConfirmReset
			return m, nil
		}

	case key.Matches(keyMsg, m.keys.Wipe):
		if m.state == StateSettings {
			m.state = StateConfirmWipe
			return m, nil
		}

	case key.Matches(keyMsg, m.keys.Sync):
		if m.relayOK {
			m.setStatus("syncing...")
			return m, m.syncCmd()
		}
		m.setStatus("relay not configured")
		return m, nil

	case key.Matches(keyMsg, m.keys.Edit):
		if m.state == StateSettings {
			m.settingsForm = settingsFormFrom(m.eng.Settings())
			m.form = newSettingsForm(m.settingsForm)
			m.state = StateEditSettings
			return m, m.form.Init()
		}
	}

	if m.state == StateStats {
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleTap() (tea.Model, tea.Cmd) {
	result := m.eng.Increment()
	m.status = ""

	switch {
	case result.GoalReached:
		m.setStatus("🎉 %s", m.strings.GoalReached)
	case len(result.Unlocked) > 0:
		m.setStatus("🏆 %s: %s", m.strings.Achievement, result.Unlocked[0].Title)
	case result.Milestone:
		m.setStatus("● %d", result.Count)
	}

	m.refreshStats()

	// A completed goal is worth pushing out right away; the relay
	// throttles on its own.
	if result.GoalReached && m.relayOK {
		return m, m.syncCmd()
	}
	return m, nil
}

func (m Model) updateTypes(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.typeList, cmd = m.typeList.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.state = m.formOrigin()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddType {
			if _, err := m.eng.AddCustomType(m.typeForm.Name, m.typeForm.Arabic); err != nil {
				m.setStatus("%v", err)
			}
			m.refreshTypes()
			m.state = StateTypes
		} else {
			if err := m.eng.UpdateSettings(m.settingsForm.apply(m.eng.Settings())); err != nil {
				m.setStatus("%v", err)
			}
			m.applyLocaleTheme()
			m.refreshStats()
			m.state = StateSettings
		}
		m.form = nil
	case huh.StateAborted:
		m.form = nil
		m.state = m.formOrigin()
	}
	return m, cmd
}

func (m Model) formOrigin() SessionState {
	if m.state == StateAddType {
		return StateTypes
	}
	return StateSettings
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			m.eng.DeleteCustomType(m.typeToDeleteID)
			m.typeToDeleteID = ""
			m.refreshTypes()
			m.refreshStats()
			m.state = StateTypes
		case "n", "N", "esc":
			m.typeToDeleteID = ""
			m.state = StateTypes
		}
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			m.eng.ResetSession()
			m.refreshTypes()
			m.refreshStats()
			m.status = ""
			m.state = StateCounter
		case "n", "N", "esc":
			m.state = StateCounter
		}
	}
	return m, nil
}

// updateConfirmWipe walks the two-step confirmation before erasing
// everything.
func (m Model) updateConfirmWipe(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.state == StateConfirmWipe {
			m.state = StateConfirmWipeTwo
			return m, nil
		}
		m.eng.ResetAll()
		m.applyLocaleTheme()
		m.refreshTypes()
		m.refreshStats()
		m.status = ""
		m.state = StateCounter
	case "n", "N", "esc":
		m.state = StateSettings
	}
	return m, nil
}

func (m Model) syncCmd() tea.Cmd {
	eng := m.eng
	relay := m.relay
	payload := syncer.Build(eng, eng.Now())
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncer.AutoSyncInterval)
		defer cancel()
		return syncDoneMsg{err: relay.Send(ctx, payload)}
	}
}
