package attendance

import (
	"context"
	"time"
)

// Service defines business logic for attendance operations. The caller (the
// HTTP layer or a cron job) resolves employeeID from the request credentials;
// the engine never reads identity itself.
type Service interface {
	// ClockIn opens today's attendance record. Reuses a shell row created by
	// the absence sweep or a leave backfill when one exists without a
	// clock-in. Clock-ins after the configured cutoff are marked late.
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's record and computes worked minutes.
	ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// StartBreak marks the beginning of today's break.
	StartBreak(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// EndBreak marks the end of today's break.
	EndBreak(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// SubmitDailyReport stores the daily report text on today's record.
	// Resubmission overwrites the previous text.
	SubmitDailyReport(ctx context.Context, employeeID string, req SubmitReportRequest) (AttendanceResponse, error)

	// GetEmployeeAttendance lists records in the range, newest first.
	GetEmployeeAttendance(ctx context.Context, employeeID string, filter RangeFilter) ([]AttendanceResponse, error)

	// GetEmployeeStats aggregates one calendar month of records.
	GetEmployeeStats(ctx context.Context, employeeID string, year, month int) (EmployeeStatsResponse, error)

	// GetRealTimeStats counts records per status across all employees on the
	// date ("YYYY-MM-DD").
	GetRealTimeStats(ctx context.Context, date string) (DayStatsResponse, error)

	// MarkAbsentEmployees backfills an absent row for every active employee
	// with no record on the date. Idempotent; invoked by the absence sweeper.
	MarkAbsentEmployees(ctx context.Context, date time.Time) (int64, error)
}
