package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	loc            *time.Location
	lateCutoff     string // wall-clock "HH:MM" in loc

	// nowFunc is swapped out in tests.
	nowFunc func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.Repository, loc *time.Location, lateCutoff string) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		loc:            loc,
		lateCutoff:     lateCutoff,
		nowFunc:        time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format("2006-01-02 15:04:05")
	return &format
}

// workDay truncates a local timestamp to its date, stored at UTC midnight so
// every row keys on a plain calendar date.
func workDay(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AttendanceServiceImpl) now() (nowUTC, nowLocal time.Time) {
	nowUTC = s.nowFunc().UTC()
	return nowUTC, nowUTC.In(s.loc)
}

// isLate reports whether the local time falls strictly after the cutoff.
func (s *AttendanceServiceImpl) isLate(nowLocal time.Time) bool {
	cutoff, err := time.Parse("15:04", s.lateCutoff)
	if err != nil {
		cutoff, _ = time.Parse("15:04", "09:00")
	}
	limit := time.Date(
		nowLocal.Year(), nowLocal.Month(), nowLocal.Day(),
		cutoff.Hour(), cutoff.Minute(), 0, 0,
		nowLocal.Location(),
	)
	return nowLocal.After(limit)
}

// ClockIn implements attendance.Service.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC, nowLocal := s.now()
	today := workDay(nowLocal)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if existing.HasClockedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusPresent
	if s.isLate(nowLocal) {
		status = attendance.StatusLate
	}

	if existing != nil {
		// Shell row left by the absence sweep or a leave backfill: take it
		// over as today's real record.
		existing.ClockIn = &nowUTC
		existing.WorkMode = &req.WorkMode
		existing.Status = status
		if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return toResponse(*existing), nil
	}

	record := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    &nowUTC,
		WorkMode:   &req.WorkMode,
		Status:     status,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		// ErrDuplicateAttendance surfaces as-is: two concurrent clock-ins
		// raced and the other one won.
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// ClockOut implements attendance.Service.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	nowUTC, nowLocal := s.now()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workDay(nowLocal))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if !record.HasClockedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNoClockInFound
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	record.ClockOut = &nowUTC

	worked := nowUTC.Sub(*record.ClockIn)
	if record.BreakStart != nil && record.BreakEnd != nil {
		worked -= record.BreakEnd.Sub(*record.BreakStart)
	}
	minutes := int(worked.Minutes())
	record.WorkMinutes = &minutes

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(*record), nil
}

// StartBreak implements attendance.Service.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	nowUTC, nowLocal := s.now()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workDay(nowLocal))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if !record.HasClockedIn() {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.BreakStart != nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyStarted
	}

	record.BreakStart = &nowUTC

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(*record), nil
}

// EndBreak implements attendance.Service.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	nowUTC, nowLocal := s.now()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workDay(nowLocal))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if record == nil || record.BreakStart == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveBreak
	}
	if record.BreakEnd != nil {
		return attendance.AttendanceResponse{}, attendance.ErrBreakAlreadyEnded
	}

	record.BreakEnd = &nowUTC

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(*record), nil
}

// SubmitDailyReport implements attendance.Service. Resubmitting replaces the
// previous text; that matches how the product behaves today.
func (s *AttendanceServiceImpl) SubmitDailyReport(ctx context.Context, employeeID string, req attendance.SubmitReportRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC, nowLocal := s.now()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, workDay(nowLocal))
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoAttendanceRecord
	}

	record.ReportText = &req.ReportText
	record.ReportSubmitted = true
	record.ReportSubmittedAt = &nowUTC

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toResponse(*record), nil
}

// GetEmployeeAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses, nil
}

// GetEmployeeStats implements attendance.Service.
func (s *AttendanceServiceImpl) GetEmployeeStats(ctx context.Context, employeeID string, year, month int) (attendance.EmployeeStatsResponse, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, first, last)
	if err != nil {
		return attendance.EmployeeStatsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	stats := attendance.EmployeeStatsResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		TotalDays:  len(records),
	}

	submitted := 0
	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusOnLeave:
			stats.OnLeaveDays++
		}
		if record.ReportSubmitted {
			submitted++
		}
	}

	if stats.TotalDays > 0 {
		stats.AttendancePercentage = float64(stats.PresentDays+stats.LateDays) / float64(stats.TotalDays) * 100
		stats.ReportSubmissionRate = float64(submitted) / float64(stats.TotalDays) * 100
	}

	return stats, nil
}

// GetRealTimeStats implements attendance.Service.
func (s *AttendanceServiceImpl) GetRealTimeStats(ctx context.Context, date string) (attendance.DayStatsResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return attendance.DayStatsResponse{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	tally, err := s.attendanceRepo.TallyByDate(ctx, day)
	if err != nil {
		return attendance.DayStatsResponse{}, fmt.Errorf("failed to tally attendance: %w", err)
	}

	return attendance.DayStatsResponse{
		Date:    date,
		Total:   tally.Total,
		Present: tally.Present,
		Late:    tally.Late,
		Absent:  tally.Absent,
		OnLeave: tally.OnLeave,
	}, nil
}

// MarkAbsentEmployees implements attendance.Service.
func (s *AttendanceServiceImpl) MarkAbsentEmployees(ctx context.Context, date time.Time) (int64, error) {
	count, err := s.attendanceRepo.InsertAbsences(ctx, workDay(date))
	if err != nil {
		return 0, fmt.Errorf("failed to mark absent employees: %w", err)
	}

	if count > 0 {
		slog.Info("Marked absent employees", "date", workDay(date).Format("2006-01-02"), "count", count)
	}

	return count, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      att.EmployeeName,
		Date:              att.Date.Format("2006-01-02"),
		ClockInTime:       timePtrToString(att.ClockIn),
		ClockOutTime:      timePtrToString(att.ClockOut),
		BreakStartTime:    timePtrToString(att.BreakStart),
		BreakEndTime:      timePtrToString(att.BreakEnd),
		Status:            att.Status,
		WorkMode:          att.WorkMode,
		ReportText:        att.ReportText,
		ReportSubmitted:   att.ReportSubmitted,
		ReportSubmittedAt: timePtrToString(att.ReportSubmittedAt),
		WorkMinutes:       att.WorkMinutes,
	}
}
