// Package dataset defines the export/import document. Field names and the
// attendance tree keep the shapes older exports used, so a file produced by
// the previous ledger imports unchanged.
package dataset

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
)

// EmployeeRecord is one employee configuration in the document, loan state
// included. Tags are the legacy camelCase names.
type EmployeeRecord struct {
	Name               string   `json:"name"`
	Job                string   `json:"job"`
	Branch             string   `json:"branch"`
	HourPrice          float64  `json:"hourPrice"`
	DailyWage          float64  `json:"dailyWage"`
	ExtraDeduction     float64  `json:"extraDeduction"`
	InsuranceDeduction float64  `json:"insuranceDeduction"`
	LoansDeduction     float64  `json:"loansDeduction"`
	LoansMonths        int      `json:"loansMonths"`
	Additional         float64  `json:"additional"`
	Deduction10        float64  `json:"deduction10"`
	DeductionDay20     float64  `json:"deductionDay20"`
	LoanRemaining      *float64 `json:"loanRemaining,omitempty"`
	LoanMonthsPaid     int      `json:"loanMonthsPaid"`
}

// DayMap maps a day-of-month (as a string key, how JSON objects carry it)
// to its record.
type DayMap map[string]attendance.DayRecord

// Document is the full dataset. Attendance maps employee name to either the
// year-dimension tree (name → year → month → day → record) or the legacy
// single-year tree (name → month → day → record); Months distinguishes the
// two by key magnitude when importing.
type Document struct {
	Employees  []EmployeeRecord                      `json:"employees"`
	Attendance map[string]map[string]json.RawMessage `json:"attendance"`
}

func FromEmployee(e employee.Employee) EmployeeRecord {
	return EmployeeRecord{
		Name:               e.Name,
		Job:                e.Job,
		Branch:             e.Branch,
		HourPrice:          e.HourPrice,
		DailyWage:          e.DailyWage,
		ExtraDeduction:     e.ExtraDeduction,
		InsuranceDeduction: e.InsuranceDeduction,
		LoansDeduction:     e.LoansDeduction,
		LoansMonths:        e.LoansMonths,
		Additional:         e.Additional,
		Deduction10:        e.Deduction10,
		DeductionDay20:     e.DeductionDay20,
		LoanRemaining:      e.LoanRemaining,
		LoanMonthsPaid:     e.LoanMonthsPaid,
	}
}

func (r EmployeeRecord) ToEmployee(position int) employee.Employee {
	months := r.LoansMonths
	if months < 1 {
		months = 1
	}
	ded10 := r.Deduction10
	if ded10 == 0 {
		ded10 = employee.DefaultDeduction10
	}
	ded20 := r.DeductionDay20
	if ded20 == 0 {
		ded20 = employee.DefaultDeductionDay20
	}
	return employee.Employee{
		Name:               r.Name,
		Job:                r.Job,
		Branch:             r.Branch,
		HourPrice:          r.HourPrice,
		DailyWage:          r.DailyWage,
		ExtraDeduction:     r.ExtraDeduction,
		InsuranceDeduction: r.InsuranceDeduction,
		LoansDeduction:     r.LoansDeduction,
		LoansMonths:        months,
		Additional:         r.Additional,
		Deduction10:        ded10,
		DeductionDay20:     ded20,
		LoanRemaining:      r.LoanRemaining,
		LoanMonthsPaid:     r.LoanMonthsPaid,
		Position:           position,
	}
}

// AddMonth inserts one attendance month into the year-dimension tree.
func (d *Document) AddMonth(m attendance.Month) error {
	if len(m.Days) == 0 {
		return nil
	}
	if d.Attendance == nil {
		d.Attendance = map[string]map[string]json.RawMessage{}
	}
	byYear, ok := d.Attendance[m.EmployeeName]
	if !ok {
		byYear = map[string]json.RawMessage{}
		d.Attendance[m.EmployeeName] = byYear
	}

	yearKey := strconv.Itoa(m.Year)
	months := map[string]DayMap{}
	if raw, ok := byYear[yearKey]; ok {
		if err := json.Unmarshal(raw, &months); err != nil {
			return fmt.Errorf("merge attendance year %s: %w", yearKey, err)
		}
	}

	dayMap := DayMap{}
	for day, rec := range m.Days {
		dayMap[strconv.Itoa(day)] = rec
	}
	months[strconv.Itoa(m.Month)] = dayMap

	raw, err := json.Marshal(months)
	if err != nil {
		return fmt.Errorf("encode attendance year %s: %w", yearKey, err)
	}
	byYear[yearKey] = raw
	return nil
}

// Months flattens the attendance tree into month sheets. Legacy trees whose
// second-level keys are month numbers are applied to defaultYear.
func (d *Document) Months(defaultYear int) ([]attendance.Month, error) {
	var out []attendance.Month

	names := make([]string, 0, len(d.Attendance))
	for name := range d.Attendance {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for key, raw := range d.Attendance[name] {
			n, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("%w: attendance key %q for %q", ErrMalformedDocument, key, name)
			}
			if n > 12 {
				// Year-dimension shape: raw is month → day → record.
				var months map[string]DayMap
				if err := json.Unmarshal(raw, &months); err != nil {
					return nil, fmt.Errorf("%w: year %d for %q: %v", ErrMalformedDocument, n, name, err)
				}
				for monthKey, dayMap := range months {
					m, err := buildMonth(name, n, monthKey, dayMap)
					if err != nil {
						return nil, err
					}
					out = append(out, m)
				}
			} else {
				// Legacy single-year shape: raw is day → record.
				var dayMap DayMap
				if err := json.Unmarshal(raw, &dayMap); err != nil {
					return nil, fmt.Errorf("%w: month %d for %q: %v", ErrMalformedDocument, n, name, err)
				}
				m, err := buildMonth(name, defaultYear, key, dayMap)
				if err != nil {
					return nil, err
				}
				out = append(out, m)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
	return out, nil
}

func buildMonth(name string, year int, monthKey string, dayMap DayMap) (attendance.Month, error) {
	month, err := strconv.Atoi(monthKey)
	if err != nil || month < 1 || month > 12 {
		return attendance.Month{}, fmt.Errorf("%w: month key %q for %q", ErrMalformedDocument, monthKey, name)
	}
	days := make(map[int]attendance.DayRecord, len(dayMap))
	for dayKey, rec := range dayMap {
		day, err := strconv.Atoi(dayKey)
		if err != nil || day < 1 || day > 31 {
			return attendance.Month{}, fmt.Errorf("%w: day key %q for %q", ErrMalformedDocument, dayKey, name)
		}
		days[day] = rec
	}
	return attendance.Month{
		EmployeeName: name,
		Year:         year,
		Month:        month,
		Days:         days,
	}, nil
}
