package dataset

import (
	"context"
	"fmt"

	"github.com/payledger/payledger-backend-go/internal/domain/attendance"
	"github.com/payledger/payledger-backend-go/internal/domain/dataset"
	"github.com/payledger/payledger-backend-go/internal/domain/employee"
	"github.com/payledger/payledger-backend-go/internal/pkg/database"
)

type DatasetServiceImpl struct {
	tx             database.TxManager
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewDatasetService(
	tx database.TxManager,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) dataset.DatasetService {
	return &DatasetServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Export implements dataset.DatasetService.
func (s *DatasetServiceImpl) Export(ctx context.Context) (dataset.Document, error) {
	doc := dataset.Document{Employees: []dataset.EmployeeRecord{}}

	employees, err := s.employeeRepo.List(ctx, "")
	if err != nil {
		return dataset.Document{}, err
	}
	for _, emp := range employees {
		doc.Employees = append(doc.Employees, dataset.FromEmployee(emp))
	}

	months, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return dataset.Document{}, err
	}
	for _, m := range months {
		if err := doc.AddMonth(m); err != nil {
			return dataset.Document{}, fmt.Errorf("export attendance for %q: %w", m.EmployeeName, err)
		}
	}

	return doc, nil
}

// Import implements dataset.DatasetService. Registry and attendance are
// replaced wholesale inside one transaction; a malformed document leaves
// the existing data untouched.
func (s *DatasetServiceImpl) Import(ctx context.Context, doc dataset.Document, defaultYear int) error {
	months, err := doc.Months(defaultYear)
	if err != nil {
		return err
	}

	employees := make([]employee.Employee, 0, len(doc.Employees))
	for i, rec := range doc.Employees {
		employees = append(employees, rec.ToEmployee(i+1))
	}

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.ReplaceAll(ctx, employees); err != nil {
			return err
		}
		return s.attendanceRepo.ReplaceAll(ctx, months)
	})
}
