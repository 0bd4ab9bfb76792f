package attendance

import "errors"

// Attendance domain errors
var (
	ErrMonthNotFound = errors.New("attendance month not found")
)
