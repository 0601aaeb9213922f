package leave

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
)

type fakeLeaveTypeRepo struct {
	types map[string]*leave.LeaveType
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	return f.types[id], nil
}

func (f *fakeLeaveTypeRepo) ListActive(ctx context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range f.types {
		if lt.IsActive {
			out = append(out, *lt)
		}
	}
	return out, nil
}

type fakeLeaveRequestRepo struct {
	requests     map[string]*leave.LeaveRequest
	approvedDays int
	nextID       int
}

func newFakeLeaveRequestRepo() *fakeLeaveRequestRepo {
	return &fakeLeaveRequestRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("req-%d", f.nextID)
	request.CreatedAt = time.Now()
	stored := request
	f.requests[request.ID] = &stored
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := f.requests[id]; ok {
		return *req, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.Status == leave.RequestStatusPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) UpdateDecision(ctx context.Context, request leave.LeaveRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	stored := request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeLeaveRequestRepo) SumApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	return f.approvedDays, nil
}

type fakeBackfillRepo struct {
	onLeaveDates []string
	failOn       string
}

func (f *fakeBackfillRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (f *fakeBackfillRepo) Update(ctx context.Context, att attendance.Attendance) error { return nil }
func (f *fakeBackfillRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeBackfillRepo) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeBackfillRepo) TallyByDate(ctx context.Context, date time.Time) (attendance.DayTally, error) {
	return attendance.DayTally{}, nil
}
func (f *fakeBackfillRepo) InsertAbsences(ctx context.Context, date time.Time) (int64, error) {
	return 0, nil
}
func (f *fakeBackfillRepo) SetOnLeave(ctx context.Context, employeeID string, date time.Time) error {
	day := date.Format("2006-01-02")
	if day == f.failOn {
		return fmt.Errorf("database unavailable")
	}
	f.onLeaveDates = append(f.onLeaveDates, employeeID+"|"+day)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error         { return nil }

// fakeTxManager runs the function without a real transaction. rolledBack is
// set when the function fails, mirroring what the real manager would do.
type fakeTxManager struct {
	rolledBack bool
}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type sentEmail struct {
	to       string
	approved bool
	reason   string
}

type fakeEmailService struct {
	sent []sentEmail
}

func (f *fakeEmailService) SendLeaveApproved(to, employeeName, leaveTypeName, startDate, endDate string, totalDays int) error {
	f.sent = append(f.sent, sentEmail{to: to, approved: true})
	return nil
}

func (f *fakeEmailService) SendLeaveRejected(to, employeeName, leaveTypeName, startDate, endDate, rejectionReason string) error {
	f.sent = append(f.sent, sentEmail{to: to, approved: false, reason: rejectionReason})
	return nil
}

type fakeFileStorage struct {
	saved []string
}

func (f *fakeFileStorage) Save(ctx context.Context, key string, content io.Reader) (string, error) {
	f.saved = append(f.saved, key)
	return key, nil
}
func (f *fakeFileStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, nil
}
func (f *fakeFileStorage) Remove(ctx context.Context, key string) error { return nil }
func (f *fakeFileStorage) URL(key string) string                        { return "http://localhost:8080/uploads/" + key }

type leaveFixture struct {
	svc         *LeaveServiceImpl
	typeRepo    *fakeLeaveTypeRepo
	requestRepo *fakeLeaveRequestRepo
	backfill    *fakeBackfillRepo
	employees   *fakeEmployeeRepo
	tx          *fakeTxManager
	emails      *fakeEmailService
	files       *fakeFileStorage
}

func newLeaveFixture() *leaveFixture {
	annual := &leave.LeaveType{ID: "lt-annual", Name: "Annual Leave", MaxDaysPerYear: 12, IsActive: true}
	retired := &leave.LeaveType{ID: "lt-retired", Name: "Sabbatical", MaxDaysPerYear: 30, IsActive: false}

	f := &leaveFixture{
		typeRepo:    &fakeLeaveTypeRepo{types: map[string]*leave.LeaveType{"lt-annual": annual, "lt-retired": retired}},
		requestRepo: newFakeLeaveRequestRepo(),
		backfill:    &fakeBackfillRepo{},
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", FullName: "Ana Silva", Email: "ana@workpulse.local"},
		}},
		tx:     &fakeTxManager{},
		emails: &fakeEmailService{},
		files:  &fakeFileStorage{},
	}
	f.svc = NewLeaveService(f.typeRepo, f.requestRepo, f.backfill, f.employees, f.tx, f.emails, f.files)
	return f
}

func TestCreateLeaveRequest_ComputesTotalDays(t *testing.T) {
	f := newLeaveFixture()

	result, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
		Reason:      "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalDays)
	assert.Equal(t, leave.RequestStatusPending, result.Status)
}

func TestCreateLeaveRequest_SingleDay(t *testing.T) {
	f := newLeaveFixture()

	result, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-02",
		Reason:      "medical appointment",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalDays)
}

func TestCreateLeaveRequest_EndBeforeStartFails(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2025-06-04",
		EndDate:     "2025-06-02",
		Reason:      "typo",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreateLeaveRequest_UnknownTypeFails(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-missing",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-03",
		Reason:      "testing",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
}

func TestCreateLeaveRequest_InactiveTypeFails(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-retired",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-03",
		Reason:      "testing",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
}

func TestCreateLeaveRequest_QuotaExceeded(t *testing.T) {
	f := newLeaveFixture()
	f.requestRepo.approvedDays = 10

	// 10 used + 3 requested > 12
	_, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-04",
		Reason:      "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrQuotaExceeded)
}

func TestCreateLeaveRequest_QuotaBoundaryExactlyFull(t *testing.T) {
	f := newLeaveFixture()
	f.requestRepo.approvedDays = 10

	// 10 used + 2 requested == 12: allowed
	result, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   "2025-06-02",
		EndDate:     "2025-06-03",
		Reason:      "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalDays)
}

func TestCreateLeaveRequest_StoresAttachment(t *testing.T) {
	f := newLeaveFixture()

	result, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID:        "lt-annual",
		StartDate:          "2025-06-02",
		EndDate:            "2025-06-03",
		Reason:             "medical leave",
		Attachment:         strings.NewReader("doctor's note"),
		AttachmentFilename: "note.pdf",
	})
	require.NoError(t, err)

	require.Len(t, f.files.saved, 1)
	assert.True(t, strings.HasPrefix(f.files.saved[0], "leave-attachments/emp-1/"))
	assert.True(t, strings.HasSuffix(f.files.saved[0], ".pdf"))
	require.NotNil(t, result.AttachmentURL)
}

func createPending(t *testing.T, f *leaveFixture, start, end string) leave.LeaveRequestResponse {
	t.Helper()
	result, err := f.svc.CreateLeaveRequest(context.Background(), "emp-1", leave.CreateLeaveRequestRequest{
		LeaveTypeID: "lt-annual",
		StartDate:   start,
		EndDate:     end,
		Reason:      "family trip",
	})
	require.NoError(t, err)
	return result
}

func TestDecideLeaveRequest_ApproveBackfillsEveryDate(t *testing.T) {
	f := newLeaveFixture()
	pending := createPending(t, f, "2025-06-02", "2025-06-04")

	result, err := f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:      pending.ID,
		ApproverUserID: "user-admin",
		Approve:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, leave.RequestStatusApproved, result.Status)
	assert.Equal(t, []string{
		"emp-1|2025-06-02",
		"emp-1|2025-06-03",
		"emp-1|2025-06-04",
	}, f.backfill.onLeaveDates)

	require.Len(t, f.emails.sent, 1)
	assert.True(t, f.emails.sent[0].approved)
	assert.Equal(t, "ana@workpulse.local", f.emails.sent[0].to)
}

func TestDecideLeaveRequest_ApproveRollsBackOnBackfillFailure(t *testing.T) {
	f := newLeaveFixture()
	f.backfill.failOn = "2025-06-03"
	pending := createPending(t, f, "2025-06-02", "2025-06-04")

	_, err := f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:      pending.ID,
		ApproverUserID: "user-admin",
		Approve:        true,
	})
	require.Error(t, err)

	assert.True(t, f.tx.rolledBack)
	assert.Empty(t, f.emails.sent)
}

func TestDecideLeaveRequest_RejectUsesProvidedReason(t *testing.T) {
	f := newLeaveFixture()
	pending := createPending(t, f, "2025-06-02", "2025-06-04")

	result, err := f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:       pending.ID,
		ApproverUserID:  "user-admin",
		Approve:         false,
		RejectionReason: "team is short-staffed that week",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.RequestStatusRejected, result.Status)
	require.NotNil(t, result.RejectionReason)
	assert.Equal(t, "team is short-staffed that week", *result.RejectionReason)
	assert.Empty(t, f.backfill.onLeaveDates)

	require.Len(t, f.emails.sent, 1)
	assert.False(t, f.emails.sent[0].approved)
	assert.Equal(t, "team is short-staffed that week", f.emails.sent[0].reason)
}

func TestDecideLeaveRequest_RejectFallsBackToDefaultReason(t *testing.T) {
	f := newLeaveFixture()
	pending := createPending(t, f, "2025-06-02", "2025-06-04")

	result, err := f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:      pending.ID,
		ApproverUserID: "user-admin",
		Approve:        false,
	})
	require.NoError(t, err)

	require.NotNil(t, result.RejectionReason)
	assert.Equal(t, defaultRejectionReason, *result.RejectionReason)
}

func TestDecideLeaveRequest_AlreadyProcessedFails(t *testing.T) {
	f := newLeaveFixture()
	pending := createPending(t, f, "2025-06-02", "2025-06-04")

	_, err := f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:      pending.ID,
		ApproverUserID: "user-admin",
		Approve:        true,
	})
	require.NoError(t, err)

	_, err = f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:      pending.ID,
		ApproverUserID: "user-admin",
		Approve:        false,
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestDecideLeaveRequest_UnknownRequestFails(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.svc.DecideLeaveRequest(context.Background(), leave.DecideLeaveRequestRequest{
		RequestID:      "req-missing",
		ApproverUserID: "user-admin",
		Approve:        true,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestGetLeaveTypes_OnlyActive(t *testing.T) {
	f := newLeaveFixture()

	types, err := f.svc.GetLeaveTypes(context.Background())
	require.NoError(t, err)

	require.Len(t, types, 1)
	assert.Equal(t, "Annual Leave", types[0].Name)
}
