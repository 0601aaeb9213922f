package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create inserts a new attendance record. Returns ErrDuplicateAttendance
	// when a row for (employee_id, date) already exists; concurrent clock-ins
	// surface through this rather than a raw constraint violation.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// Update rewrites the mutable fields of an existing record.
	Update(ctx context.Context, att Attendance) error

	// GetByEmployeeAndDate retrieves the record for one employee on one date.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByEmployee retrieves records for the employee within the inclusive
	// date range, descending by date.
	ListByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Attendance, error)

	// TallyByDate counts records per status across all employees on one date.
	TallyByDate(ctx context.Context, date time.Time) (DayTally, error)

	// InsertAbsences creates an absent row for every active employee lacking
	// a record on the date. Existing rows are left untouched, so running it
	// twice is a no-op. Returns the number of rows created.
	InsertAbsences(ctx context.Context, date time.Time) (int64, error)

	// SetOnLeave upserts the employee's record for the date with on_leave
	// status, overwriting the status of an existing row.
	SetOnLeave(ctx context.Context, employeeID string, date time.Time) error
}
