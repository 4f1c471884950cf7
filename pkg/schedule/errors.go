package schedule

import "errors"

var (
	// ErrInvalidTime indicates a time-of-day string is not in HH:MM form.
	ErrInvalidTime = errors.New("time must be in HH:MM format")

	// ErrInvalidInterval indicates a non-positive interval.
	ErrInvalidInterval = errors.New("interval must be positive")

	// ErrInvalidSchedule indicates a cron expression that does not parse.
	ErrInvalidSchedule = errors.New("invalid cron schedule")
)
