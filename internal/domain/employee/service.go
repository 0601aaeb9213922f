package employee

import (
	"context"
)

// Service defines business logic for employee records.
type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	GetEmployeeByUserID(ctx context.Context, userID string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}
