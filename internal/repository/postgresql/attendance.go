package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.clock_in, a.clock_out, a.break_start, a.break_end,
	a.status, a.work_mode,
	a.report_text, a.report_submitted, a.report_submitted_at,
	a.work_minutes, a.created_at, a.updated_at`

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := r.db.QuerierFromContext(ctx)

	// ON CONFLICT DO NOTHING turns a concurrent duplicate insert into
	// ErrNoRows instead of a constraint violation; callers see it as
	// ErrDuplicateAttendance.
	query := `
		INSERT INTO attendance_records (
			employee_id, date, clock_in, clock_out, break_start, break_end,
			status, work_mode, report_text, report_submitted, report_submitted_at,
			work_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.ClockOut,
		att.BreakStart,
		att.BreakEnd,
		att.Status,
		att.WorkMode,
		att.ReportText,
		att.ReportSubmitted,
		att.ReportSubmittedAt,
		att.WorkMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := r.db.QuerierFromContext(ctx)

	query := `
		UPDATE attendance_records SET
			clock_in = $2,
			clock_out = $3,
			break_start = $4,
			break_end = $5,
			status = $6,
			work_mode = $7,
			report_text = $8,
			report_submitted = $9,
			report_submitted_at = $10,
			work_minutes = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockIn,
		att.ClockOut,
		att.BreakStart,
		att.BreakEnd,
		att.Status,
		att.WorkMode,
		att.ReportText,
		att.ReportSubmitted,
		att.ReportSubmittedAt,
		att.WorkMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.ClockIn, &att.ClockOut, &att.BreakStart, &att.BreakEnd,
		&att.Status, &att.WorkMode,
		&att.ReportText, &att.ReportSubmitted, &att.ReportSubmittedAt,
		&att.WorkMinutes, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListByEmployee implements attendance.Repository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT` + attendanceColumns + `,
			e.full_name AS employee_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date >= $2
		  AND a.date <= $3
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.ClockIn, &att.ClockOut, &att.BreakStart, &att.BreakEnd,
			&att.Status, &att.WorkMode,
			&att.ReportText, &att.ReportSubmitted, &att.ReportSubmittedAt,
			&att.WorkMinutes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// TallyByDate implements attendance.Repository.
func (r *attendanceRepository) TallyByDate(ctx context.Context, date time.Time) (attendance.DayTally, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'late'),
			COUNT(*) FILTER (WHERE status = 'absent'),
			COUNT(*) FILTER (WHERE status = 'on_leave')
		FROM attendance_records
		WHERE date = $1
	`

	var tally attendance.DayTally
	err := q.QueryRow(ctx, query, date).Scan(
		&tally.Total, &tally.Present, &tally.Late, &tally.Absent, &tally.OnLeave,
	)
	if err != nil {
		return attendance.DayTally{}, fmt.Errorf("failed to tally attendance by date: %w", err)
	}

	return tally, nil
}

// InsertAbsences implements attendance.Repository.
func (r *attendanceRepository) InsertAbsences(ctx context.Context, date time.Time) (int64, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		SELECT e.id, $1, 'absent'
		FROM employees e
		WHERE e.employment_status = 'active'
		  AND e.deleted_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_records a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert absences: %w", err)
	}

	return tag.RowsAffected(), nil
}

// SetOnLeave implements attendance.Repository.
func (r *attendanceRepository) SetOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	q := r.db.QuerierFromContext(ctx)

	// Leave approval overwrites whatever status the day already carries,
	// including a same-day clock-in.
	query := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, 'on_leave')
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = 'on_leave', updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to set on-leave status: %w", err)
	}

	return nil
}
