package attendance

import (
	"time"
)

// DayRecord is one day cell: optional clock-in and clock-out wall-clock
// times, "HH:MM" with minute granularity. Either side may be absent
// independently; a day is worked only when both are present.
type DayRecord struct {
	ClockIn  string `json:"attendance,omitempty"`
	ClockOut string `json:"departure,omitempty"`
}

// Complete reports whether both ends of the pair are present and parseable.
func (d DayRecord) Complete() bool {
	if d.ClockIn == "" || d.ClockOut == "" {
		return false
	}
	_, inErr := time.Parse("15:04", d.ClockIn)
	_, outErr := time.Parse("15:04", d.ClockOut)
	return inErr == nil && outErr == nil
}

// HoursWorked is the same-day time-of-day difference in fractional hours.
// Clock-out is assumed to follow clock-in on the same reference day; there
// is no overnight-shift handling.
func (d DayRecord) HoursWorked() float64 {
	in, inErr := time.Parse("15:04", d.ClockIn)
	out, outErr := time.Parse("15:04", d.ClockOut)
	if inErr != nil || outErr != nil {
		return 0
	}
	return out.Sub(in).Minutes() / 60
}

// Month is the attendance sheet for one employee and billing period. It is
// keyed by employee name, not registry ID: deleting an employee deliberately
// orphans these rows instead of purging them.
type Month struct {
	EmployeeName string
	Year         int
	Month        int
	Days         map[int]DayRecord
	UpdatedAt    time.Time
}
