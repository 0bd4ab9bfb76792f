package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayRecordComplete(t *testing.T) {
	assert.True(t, DayRecord{ClockIn: "08:00", ClockOut: "17:00"}.Complete())
	assert.False(t, DayRecord{ClockIn: "08:00"}.Complete())
	assert.False(t, DayRecord{ClockOut: "17:00"}.Complete())
	assert.False(t, DayRecord{}.Complete())
	assert.False(t, DayRecord{ClockIn: "8am", ClockOut: "17:00"}.Complete())
}

func TestDayRecordHoursWorked(t *testing.T) {
	assert.InDelta(t, 9.0, DayRecord{ClockIn: "08:00", ClockOut: "17:00"}.HoursWorked(), 1e-9)
	assert.InDelta(t, 9.5, DayRecord{ClockIn: "08:00", ClockOut: "17:30"}.HoursWorked(), 1e-9)
	assert.InDelta(t, 8.25, DayRecord{ClockIn: "08:45", ClockOut: "17:00"}.HoursWorked(), 1e-9)

	// Minute granularity survives the fractional-hour conversion.
	assert.InDelta(t, 1.0/60, DayRecord{ClockIn: "08:00", ClockOut: "08:01"}.HoursWorked(), 1e-9)
}
