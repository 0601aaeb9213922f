package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in/out errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNoClockInFound    = errors.New("no clock-in found for today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// Break errors
	ErrNotClockedIn        = errors.New("you have not clocked in yet")
	ErrBreakAlreadyStarted = errors.New("break has already been started")
	ErrNoActiveBreak       = errors.New("no active break found")
	ErrBreakAlreadyEnded   = errors.New("break has already been ended")

	// General errors
	ErrNoAttendanceRecord  = errors.New("no attendance record found for today")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this date")
)
