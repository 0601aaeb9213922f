package leave

import (
	"time"
)

// LeaveType entity: reference data the engine only reads.
type LeaveType struct {
	ID             string
	Name           string
	Description    *string
	MaxDaysPerYear int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Terminal reports whether the status can no longer change.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// LeaveRequest entity. StartDate and EndDate are inclusive; TotalDays is
// derived as endDate - startDate + 1 in whole days.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason        string
	AttachmentURL *string

	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined projections
	LeaveTypeName *string
	EmployeeName  *string
}
