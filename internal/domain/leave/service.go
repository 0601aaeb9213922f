package leave

import (
	"context"
)

// Service defines business logic for the leave workflow.
type Service interface {
	// CreateLeaveRequest validates the leave type, the date range and the
	// yearly quota, then persists a pending request.
	CreateLeaveRequest(ctx context.Context, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetEmployeeLeaveRequests lists the employee's requests, newest first.
	GetEmployeeLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// GetPendingLeaveRequests lists pending requests oldest first.
	GetPendingLeaveRequests(ctx context.Context) ([]LeaveRequestResponse, error)

	// DecideLeaveRequest moves a pending request to approved or rejected.
	// Approval backfills every date in the range as on_leave; both the status
	// change and the backfill commit in one transaction.
	DecideLeaveRequest(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetLeaveTypes lists active leave types.
	GetLeaveTypes(ctx context.Context) ([]LeaveTypeResponse, error)
}
