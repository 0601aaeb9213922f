package alert

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

type CreateAlertRequest struct {
	EmployeeID string    `json:"employee_id"`
	Type       AlertType `json:"alert_type"`
	Message    string    `json:"message"`
}

func (r CreateAlertRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee is required"})
	}
	valid := false
	for _, t := range AllAlertTypes() {
		if r.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "alert_type", Message: "Unknown alert type"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "Message is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

type AlertResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Type         AlertType `json:"alert_type"`
	Message      string    `json:"message"`
	AlertDate    string    `json:"alert_date"`
	IsRead       bool      `json:"is_read"`
	ReadAt       *string   `json:"read_at,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    string    `json:"created_at"`
}
