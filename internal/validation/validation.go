package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/donikhodjaev/misbaha/internal/models"
)

// Error reports a user input failing a precondition. The operation
// that received the input is aborted without any state change.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a validation Error.
func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Name checks a zikr type display name.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return &Error{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// Goal checks a daily goal value.
func Goal(goal int) error {
	if goal < models.MinDailyGoal || goal > models.MaxDailyGoal {
		return &Error{
			Field:   "goal",
			Message: fmt.Sprintf("must be between %d and %d", models.MinDailyGoal, models.MaxDailyGoal),
		}
	}
	return nil
}

// ClockTime checks an HH:MM string such as a notification time.
func ClockTime(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return &Error{Field: "time", Message: fmt.Sprintf("%q is not in HH:MM format", value)}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return &Error{Field: "time", Message: fmt.Sprintf("%q has an invalid hour", value)}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return &Error{Field: "time", Message: fmt.Sprintf("%q has an invalid minute", value)}
	}
	return nil
}

// Interval checks a notification interval in hours. Zero disables
// interval notifications.
func Interval(hours int) error {
	if hours < 0 {
		return &Error{Field: "interval", Message: "must not be negative"}
	}
	return nil
}
