package leave

import (
	"context"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	// GetByID retrieves a leave type. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*LeaveType, error)

	// ListActive retrieves active leave types ordered by name.
	ListActive(ctx context.Context) ([]LeaveType, error)
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID returns ErrLeaveRequestNotFound when absent.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee retrieves the employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListPending retrieves all pending requests, oldest first (FIFO review).
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// UpdateDecision stores the terminal status and approver fields.
	UpdateDecision(ctx context.Context, request LeaveRequest) error

	// SumApprovedDays totals total_days over the employee's approved requests
	// of the leave type whose start date falls in the calendar year.
	SumApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error)
}
