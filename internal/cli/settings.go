package cli

import (
	"fmt"

	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/scheduler"
)

type SettingsCmd struct {
	Vibration   string `help:"Enable or disable vibration feedback (on/off)."`
	Sound       string `help:"Enable or disable sound feedback (on/off)."`
	Theme       string `help:"Color theme (default/dark/light)."`
	Language    string `help:"UI language (ru/en)."`
	Notify      string `help:"Enable or disable daily reminders (on/off)."`
	NotifyAt    string `help:"Reminder time in HH:MM."`
	NotifyEvery int    `help:"Repeat reminders every N hours (0 disables repeats)." default:"-1"`
}

func (c *SettingsCmd) Validate() error {
	for _, toggle := range []string{c.Vibration, c.Sound, c.Notify} {
		if toggle != "" && toggle != "on" && toggle != "off" {
			return fmt.Errorf("toggle flags take on or off, got %q", toggle)
		}
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.loadEngine(); err != nil {
		return err
	}
	eng := ctx.Engine

	s := eng.Settings()
	changed := false

	if c.Vibration != "" {
		s.VibrationEnabled = c.Vibration == "on"
		changed = true
	}
	if c.Sound != "" {
		s.SoundEnabled = c.Sound == "on"
		changed = true
	}
	if c.Theme != "" {
		s.Theme = models.Theme(c.Theme)
		changed = true
	}
	if c.Language != "" {
		s.Language = models.Language(c.Language)
		changed = true
	}
	if c.Notify != "" {
		s.NotificationsEnabled = c.Notify == "on"
		changed = true
	}
	if c.NotifyAt != "" {
		s.NotificationTime = c.NotifyAt
		changed = true
	}
	if c.NotifyEvery >= 0 {
		s.NotificationInterval = c.NotifyEvery
		changed = true
	}

	if changed {
		if err := eng.UpdateSettings(s); err != nil {
			return err
		}
		s = eng.Settings()
	}

	fmt.Printf("Daily goal:     %d\n", s.DailyGoal)
	fmt.Printf("Vibration:      %s\n", onOff(s.VibrationEnabled))
	fmt.Printf("Sound:          %s\n", onOff(s.SoundEnabled))
	fmt.Printf("Theme:          %s\n", s.Theme)
	fmt.Printf("Language:       %s\n", s.Language)
	fmt.Printf("Reminders:      %s\n", onOff(s.NotificationsEnabled))
	fmt.Printf("Reminder time:  %s\n", s.NotificationTime)
	if s.NotificationInterval > 0 {
		fmt.Printf("Repeat every:   %dh\n", s.NotificationInterval)
	}

	if next, ok, err := scheduler.New().Next(eng.Now(), s); err == nil && ok {
		fmt.Printf("Next reminder:  %s\n", next.Format("2006-01-02 15:04"))
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
