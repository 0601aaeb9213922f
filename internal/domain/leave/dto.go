package leave

import (
	"io"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// ============= Request DTOs =============

type CreateLeaveRequestRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`

	// Optional supporting document, attached by the handler from the
	// multipart form.
	Attachment         io.Reader `json:"-"`
	AttachmentFilename string    `json:"-"`
}

func (r CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{Field: "leave_type_id", Message: "Leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideLeaveRequestRequest approves or rejects a pending request.
// RejectionReason is only read when Approve is false; an empty value falls
// back to a generic message so email-link rejections still carry one.
type DecideLeaveRequestRequest struct {
	RequestID       string
	ApproverUserID  string
	Approve         bool
	RejectionReason string
}

// ============= Response DTOs =============

type LeaveTypeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	MaxDaysPerYear int     `json:"max_days_per_year"`
}

type LeaveRequestResponse struct {
	ID              string        `json:"id"`
	EmployeeID      string        `json:"employee_id"`
	EmployeeName    *string       `json:"employee_name,omitempty"`
	LeaveTypeID     string        `json:"leave_type_id"`
	LeaveTypeName   *string       `json:"leave_type_name,omitempty"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	TotalDays       int           `json:"total_days"`
	Reason          string        `json:"reason"`
	AttachmentURL   *string       `json:"attachment_url,omitempty"`
	Status          RequestStatus `json:"status"`
	ApprovedBy      *string       `json:"approved_by,omitempty"`
	ApprovedAt      *string       `json:"approved_at,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	CreatedAt       string        `json:"created_at"`
}
