package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "7:05"}
	invalid := []string{"24:00", "12:60", "9am", "12", "", "12:3x"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 2, 28},
		{2024, 2, 29}, // leap year
		{2025, 12, 31},
	}
	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestIsValidDayOfMonth(t *testing.T) {
	if !IsValidDayOfMonth(29, 2024, 2) {
		t.Error("IsValidDayOfMonth(29, 2024, 2) = false, want true")
	}
	if IsValidDayOfMonth(29, 2025, 2) {
		t.Error("IsValidDayOfMonth(29, 2025, 2) = true, want false")
	}
	if IsValidDayOfMonth(0, 2025, 1) {
		t.Error("IsValidDayOfMonth(0, 2025, 1) = true, want false")
	}
	if IsValidDayOfMonth(5, 2025, 13) {
		t.Error("IsValidDayOfMonth(5, 2025, 13) = true, want false")
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}
