package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance // keyed by employeeID|date
	nextID  int

	insertAbsencesCount int64
	insertAbsencesCalls int
	failInsertAbsences  bool
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateAttendance
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	stored := att
	f.records[k] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	k := key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; !exists {
		return attendance.ErrAttendanceNotFound
	}
	stored := att
	f.records[k] = &stored
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if rec, ok := f.records[key(employeeID, date)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(startDate) || rec.Date.After(endDate) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) TallyByDate(ctx context.Context, date time.Time) (attendance.DayTally, error) {
	tally := attendance.DayTally{}
	for _, rec := range f.records {
		if !rec.Date.Equal(date) {
			continue
		}
		tally.Total++
		switch rec.Status {
		case attendance.StatusPresent:
			tally.Present++
		case attendance.StatusLate:
			tally.Late++
		case attendance.StatusAbsent:
			tally.Absent++
		case attendance.StatusOnLeave:
			tally.OnLeave++
		}
	}
	return tally, nil
}

func (f *fakeAttendanceRepo) InsertAbsences(ctx context.Context, date time.Time) (int64, error) {
	f.insertAbsencesCalls++
	if f.failInsertAbsences {
		return 0, fmt.Errorf("database unavailable")
	}
	return f.insertAbsencesCount, nil
}

func (f *fakeAttendanceRepo) SetOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	k := key(employeeID, date)
	if rec, ok := f.records[k]; ok {
		rec.Status = attendance.StatusOnLeave
		return nil
	}
	f.nextID++
	f.records[k] = &attendance.Attendance{
		ID:         fmt.Sprintf("att-%d", f.nextID),
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusOnLeave,
	}
	return nil
}

func newTestService(repo *fakeAttendanceRepo, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, time.UTC, "09:00")
	svc.nowFunc = func() time.Time { return now }
	return svc
}

func TestClockIn_BeforeCutoffIsPresent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 8, 45, 0, 0, time.UTC))

	result, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, "2025-03-10", result.Date)
	require.NotNil(t, result.ClockInTime)
}

func TestClockIn_ExactlyAtCutoffIsPresent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	result, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "remote"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, result.Status)
}

func TestClockIn_AfterCutoffIsLate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 1, 0, 0, time.UTC))

	result, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusLate, result.Status)
}

func TestClockIn_CutoffUsesConfiguredTimezone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	repo := newFakeAttendanceRepo()
	// 01:30 UTC is 08:30 in Jakarta (UTC+7), before the cutoff.
	svc := NewAttendanceService(repo, jakarta, "09:00")
	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC) }

	result, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, "2025-03-10", result.Date)
}

func TestClockIn_TwiceSameDayFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_ReusesAbsentShellRow(t *testing.T) {
	repo := newFakeAttendanceRepo()
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.records[key("emp-1", today)] = &attendance.Attendance{
		ID:         "att-shell",
		EmployeeID: "emp-1",
		Date:       today,
		Status:     attendance.StatusAbsent,
	}

	svc := newTestService(repo, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	result, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	assert.Equal(t, "att-shell", result.ID)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Len(t, repo.records, 1)
}

func TestClockIn_MissingWorkModeFailsValidation(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{})
	assert.Error(t, err)
	assert.Empty(t, repo.records)
}

func TestClockOut_ComputesWorkMinutes(t *testing.T) {
	repo := newFakeAttendanceRepo()
	clockIn := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	svc := newTestService(repo, clockIn)

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC) }
	result, err := svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)

	require.NotNil(t, result.WorkMinutes)
	assert.Equal(t, 510, *result.WorkMinutes) // 8h30m
}

func TestClockOut_SubtractsBreak(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	_, err = svc.StartBreak(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC) }
	_, err = svc.EndBreak(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC) }
	result, err := svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)

	require.NotNil(t, result.WorkMinutes)
	assert.Equal(t, 450, *result.WorkMinutes) // 8h30m minus 1h break
}

func TestClockOut_WithoutClockInFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC))

	_, err := svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNoClockInFound)
}

func TestClockOut_TwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC) }
	_, err = svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestStartBreak_RequiresClockIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	_, err := svc.StartBreak(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestStartBreak_TwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	_, err = svc.StartBreak(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.StartBreak(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyStarted)
}

func TestEndBreak_WithoutActiveBreakFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	_, err = svc.EndBreak(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)
}

func TestEndBreak_TwiceFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	_, err = svc.StartBreak(context.Background(), "emp-1")
	require.NoError(t, err)
	_, err = svc.EndBreak(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.EndBreak(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrBreakAlreadyEnded)
}

func TestSubmitDailyReport_RequiresRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))

	_, err := svc.SubmitDailyReport(context.Background(), "emp-1", attendance.SubmitReportRequest{ReportText: "shipped the release"})
	assert.ErrorIs(t, err, attendance.ErrNoAttendanceRecord)
}

func TestSubmitDailyReport_ResubmitOverwrites(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "emp-1", attendance.ClockInRequest{WorkMode: "in_office"})
	require.NoError(t, err)

	_, err = svc.SubmitDailyReport(context.Background(), "emp-1", attendance.SubmitReportRequest{ReportText: "first draft"})
	require.NoError(t, err)

	result, err := svc.SubmitDailyReport(context.Background(), "emp-1", attendance.SubmitReportRequest{ReportText: "final version"})
	require.NoError(t, err)

	require.NotNil(t, result.ReportText)
	assert.Equal(t, "final version", *result.ReportText)
	assert.True(t, result.ReportSubmitted)
}

func TestGetEmployeeStats_Percentages(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC))

	addRecord := func(day int, status attendance.Status, submitted bool) {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		repo.records[key("emp-1", date)] = &attendance.Attendance{
			EmployeeID:      "emp-1",
			Date:            date,
			Status:          status,
			ReportSubmitted: submitted,
		}
	}

	for day := 1; day <= 7; day++ {
		addRecord(day, attendance.StatusPresent, true)
	}
	addRecord(8, attendance.StatusLate, true)
	addRecord(9, attendance.StatusLate, false)
	addRecord(10, attendance.StatusAbsent, false)

	stats, err := svc.GetEmployeeStats(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalDays)
	assert.Equal(t, 7, stats.PresentDays)
	assert.Equal(t, 2, stats.LateDays)
	assert.Equal(t, 1, stats.AbsentDays)
	assert.InDelta(t, 90.0, stats.AttendancePercentage, 0.001)
	assert.InDelta(t, 80.0, stats.ReportSubmissionRate, 0.001)
}

func TestGetEmployeeStats_EmptyMonth(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC))

	stats, err := svc.GetEmployeeStats(context.Background(), "emp-1", 2025, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalDays)
	assert.Zero(t, stats.AttendancePercentage)
	assert.Zero(t, stats.ReportSubmissionRate)
}

func TestGetRealTimeStats_TalliesByStatus(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.records[key("emp-1", date)] = &attendance.Attendance{EmployeeID: "emp-1", Date: date, Status: attendance.StatusPresent}
	repo.records[key("emp-2", date)] = &attendance.Attendance{EmployeeID: "emp-2", Date: date, Status: attendance.StatusLate}
	repo.records[key("emp-3", date)] = &attendance.Attendance{EmployeeID: "emp-3", Date: date, Status: attendance.StatusOnLeave}

	stats, err := svc.GetRealTimeStats(context.Background(), "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.OnLeave)
	assert.Zero(t, stats.Absent)
}

func TestMarkAbsentEmployees_ReturnsCount(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.insertAbsencesCount = 4
	svc := newTestService(repo, time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC))

	count, err := svc.MarkAbsentEmployees(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(4), count)
	assert.Equal(t, 1, repo.insertAbsencesCalls)
}

func TestMarkAbsentEmployees_PropagatesError(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.failInsertAbsences = true
	svc := newTestService(repo, time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC))

	_, err := svc.MarkAbsentEmployees(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
