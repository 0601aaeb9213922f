package employee

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

type CreateEmployeeRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	PositionID      *string `json:"position_id,omitempty"`
	HireDate        string  `json:"hire_date"`
	DefaultWorkMode string  `json:"default_work_mode"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email must be a valid email address"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "Hire date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.DefaultWorkMode) {
		errs = append(errs, validator.ValidationError{Field: "default_work_mode", Message: "Default work mode is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	DefaultWorkMode  *string `json:"default_work_mode,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name must not be empty"})
	}
	if r.EmploymentStatus != nil {
		valid := validator.IsInSlice(*r.EmploymentStatus, []string{
			string(EmploymentStatusActive),
			string(EmploymentStatusResigned),
			string(EmploymentStatusTerminated),
		})
		if !valid {
			errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "Unknown employment status"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows and pages the employee list.
type ListFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// ============= Response DTOs =============

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	PositionID       *string `json:"position_id,omitempty"`
	PositionName     *string `json:"position_name,omitempty"`
	HireDate         string  `json:"hire_date"`
	DefaultWorkMode  string  `json:"default_work_mode"`
	EmploymentStatus string  `json:"employment_status"`
}
