package constants

const (
	AppName          = "misbaha"
	DefaultStorePath = "~/.config/misbaha/misbaha.db"
	Version          = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// LockfileName marks a running interactive session so that doctor
	// can warn about concurrent store access.
	LockfileName = "misbaha.lock"
)
