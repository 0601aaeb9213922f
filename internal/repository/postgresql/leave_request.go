package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id,
	lr.start_date, lr.end_date, lr.total_days,
	lr.reason, lr.attachment_url,
	lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.created_at, lr.updated_at,
	lt.name AS leave_type_name,
	e.full_name AS employee_name`

const leaveRequestJoins = `
	FROM leave_requests lr
	LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
	LEFT JOIN employees e ON e.id = lr.employee_id`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID,
		&lr.StartDate, &lr.EndDate, &lr.TotalDays,
		&lr.Reason, &lr.AttachmentURL,
		&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.LeaveTypeName, &lr.EmployeeName,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type_id, start_date, end_date, total_days,
			reason, attachment_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveTypeID,
		request.StartDate,
		request.EndDate,
		request.TotalDays,
		request.Reason,
		request.AttachmentURL,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `SELECT` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `SELECT` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC`

	return r.list(ctx, query, employeeID)
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	// Oldest first so approvers review in submission order.
	query := `SELECT` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.status = 'pending'
		ORDER BY lr.created_at ASC`

	return r.list(ctx, query)
}

func (r *leaveRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := r.db.QuerierFromContext(ctx)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// UpdateDecision implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateDecision(ctx context.Context, request leave.LeaveRequest) error {
	q := r.db.QuerierFromContext(ctx)

	query := `
		UPDATE leave_requests SET
			status = $2,
			approved_by = $3,
			approved_at = $4,
			rejection_reason = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.Status,
		request.ApprovedBy,
		request.ApprovedAt,
		request.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// SumApprovedDays implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) SumApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND leave_type_id = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var used int
	if err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(&used); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return used, nil
}
