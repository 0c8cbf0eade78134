// Package scheduler computes the daily reminder plan from the
// notification settings. It only answers "when should the user be
// nudged today"; delivering the nudge is the caller's concern.
package scheduler

import (
	"fmt"
	"time"

	"github.com/donikhodjaev/misbaha/internal/constants"
	"github.com/donikhodjaev/misbaha/internal/models"
	"github.com/donikhodjaev/misbaha/internal/validation"
)

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// GenerateReminders returns the reminder times for the given date,
// earliest first. The first reminder fires at the configured time;
// when an interval is set, further reminders repeat every interval
// hours until midnight. Disabled notifications yield an empty plan.
func (s *Scheduler) GenerateReminders(date string, settings models.Settings) ([]time.Time, error) {
	if !settings.NotificationsEnabled {
		return nil, nil
	}

	day, err := time.ParseInLocation(constants.DateFormat, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	if err := validation.ClockTime(settings.NotificationTime); err != nil {
		return nil, err
	}
	if err := validation.Interval(settings.NotificationInterval); err != nil {
		return nil, err
	}

	first, err := time.ParseInLocation(constants.TimeFormat, settings.NotificationTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid notification time: %w", err)
	}

	at := day.Add(time.Duration(first.Hour())*time.Hour + time.Duration(first.Minute())*time.Minute)
	reminders := []time.Time{at}

	if settings.NotificationInterval > 0 {
		step := time.Duration(settings.NotificationInterval) * time.Hour
		midnight := day.AddDate(0, 0, 1)
		for next := at.Add(step); next.Before(midnight); next = next.Add(step) {
			reminders = append(reminders, next)
		}
	}

	return reminders, nil
}

// Next returns the first reminder at or after now, looking at today's
// plan and then tomorrow's. ok=false means notifications are off.
func (s *Scheduler) Next(now time.Time, settings models.Settings) (time.Time, bool, error) {
	for offset := 0; offset <= 1; offset++ {
		date := now.AddDate(0, 0, offset).Format(constants.DateFormat)
		reminders, err := s.GenerateReminders(date, settings)
		if err != nil {
			return time.Time{}, false, err
		}
		for _, r := range reminders {
			if !r.Before(now) {
				return r, true, nil
			}
		}
	}
	return time.Time{}, false, nil
}
