package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/validation"
)

func newTypeForm(f *TypeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Display name for the new zikr type").
				Value(&f.Name).
				Validate(validation.Name),
			huh.NewInput().
				Title("Arabic").
				Description("Leave empty to auto-suggest from the name").
				Value(&f.Arabic),
		),
	)
}

func newSettingsForm(f *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily goal").
				Value(&f.Goal).
				Validate(func(s string) error {
					goal, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					return validation.Goal(goal)
				}),
			huh.NewConfirm().
				Title("Vibration").
				Value(&f.Vibration),
			huh.NewConfirm().
				Title("Sound").
				Value(&f.Sound),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Default", string(models.ThemeDefault)),
					huh.NewOption("Dark", string(models.ThemeDark)),
					huh.NewOption("Light", string(models.ThemeLight)),
				).
				Value(&f.Theme),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("Русский", string(models.LanguageRussian)),
					huh.NewOption("English", string(models.LanguageEnglish)),
				).
				Value(&f.Language),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Daily reminders").
				Value(&f.Notify),
			huh.NewInput().
				Title("Reminder time").
				Description("HH:MM").
				Value(&f.NotifyAt).
				Validate(validation.ClockTime),
			huh.NewInput().
				Title("Repeat every N hours").
				Description("0 disables repeats").
				Value(&f.NotifyEvery).
				Validate(func(s string) error {
					hours, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					return validation.Interval(hours)
				}),
		),
	)
}

func settingsFormFrom(s models.Settings) *SettingsFormModel {
	return &SettingsFormModel{
		Goal:        strconv.Itoa(s.DailyGoal),
		Vibration:   s.VibrationEnabled,
		Sound:       s.SoundEnabled,
		Theme:       string(s.Theme),
		Language:    string(s.Language),
		Notify:      s.NotificationsEnabled,
		NotifyAt:    s.NotificationTime,
		NotifyEvery: strconv.Itoa(s.NotificationInterval),
	}
}

func (f *SettingsFormModel) apply(s models.Settings) models.Settings {
	if goal, err := strconv.Atoi(f.Goal); err == nil {
		s.DailyGoal = goal
	}
	s.VibrationEnabled = f.Vibration
	s.SoundEnabled = f.Sound
	s.Theme = models.Theme(f.Theme)
	s.Language = models.Language(f.Language)
	s.NotificationsEnabled = f.Notify
	s.NotificationTime = f.NotifyAt
	if hours, err := strconv.Atoi(f.NotifyEvery); err == nil {
		s.NotificationInterval = hours
	}
	return s
}
