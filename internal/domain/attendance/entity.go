package attendance

import (
	"time"
)

// Status of a daily attendance record.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
)

// Attendance is one employee's ledger for one working day. There is at most
// one row per (EmployeeID, Date); the database enforces it with a unique
// constraint.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // date-only, stored at UTC midnight

	ClockIn    *time.Time
	ClockOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time

	Status   Status
	WorkMode *string // free-form label, e.g. "in_office", "remote"

	ReportText        *string
	ReportSubmitted   bool
	ReportSubmittedAt *time.Time

	// WorkMinutes is filled on clock-out: (out - in) minus the break.
	WorkMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined projection
	EmployeeName *string
}

// HasClockedIn reports whether the row carries an actual clock-in, as opposed
// to a shell row created by the absence sweep or a leave backfill.
func (a *Attendance) HasClockedIn() bool {
	return a != nil && a.ClockIn != nil
}

// DayTally is the per-date status breakdown across all employees.
type DayTally struct {
	Total   int
	Present int
	Late    int
	Absent  int
	OnLeave int
}
