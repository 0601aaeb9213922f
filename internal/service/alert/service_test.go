package alert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workpulse-backend-go/internal/domain/alert"
)

type fakeAlertRepo struct {
	alerts map[string]*alert.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]*alert.Alert)}
}

func (f *fakeAlertRepo) Create(ctx context.Context, a alert.Alert) (alert.Alert, error) {
	a.CreatedAt = time.Now()
	stored := a
	f.alerts[a.ID] = &stored
	return a, nil
}

func (f *fakeAlertRepo) ListByEmployee(ctx context.Context, employeeID string) ([]alert.Alert, error) {
	var out []alert.Alert
	for _, a := range f.alerts {
		if a.EmployeeID == employeeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) MarkAsRead(ctx context.Context, id string) error {
	a, ok := f.alerts[id]
	if !ok || a.IsRead {
		// Missing or already-read rows are silently skipped.
		return nil
	}
	now := time.Now()
	a.IsRead = true
	a.ReadAt = &now
	return nil
}

func newTestService(repo *fakeAlertRepo) *AlertServiceImpl {
	svc := NewAlertService(repo)
	svc.nowFunc = func() time.Time { return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateAlert_StoresUnreadWithCurrentDate(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := newTestService(repo)

	result, err := svc.CreateAlert(context.Background(), "user-admin", alert.CreateAlertRequest{
		EmployeeID: "emp-1",
		Type:       alert.TypeGeneral,
		Message:    "Please submit your timesheet",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2025-03-10", result.AlertDate)
	assert.False(t, result.IsRead)
	assert.Equal(t, "user-admin", result.CreatedBy)
}

func TestCreateAlert_UnknownTypeFailsValidation(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := newTestService(repo)

	_, err := svc.CreateAlert(context.Background(), "user-admin", alert.CreateAlertRequest{
		EmployeeID: "emp-1",
		Type:       alert.AlertType("urgent"),
		Message:    "hello",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.alerts)
}

func TestSendLateAlert_UsesLateType(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := newTestService(repo)

	result, err := svc.SendLateAlert(context.Background(), "user-admin", "emp-1")
	require.NoError(t, err)

	assert.Equal(t, alert.TypeLate, result.Type)
	assert.NotEmpty(t, result.Message)
}

func TestMarkAsRead_FlipsOnce(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := newTestService(repo)

	created, err := svc.SendLateAlert(context.Background(), "user-admin", "emp-1")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(context.Background(), created.ID))

	stored := repo.alerts[created.ID]
	require.True(t, stored.IsRead)
	firstReadAt := *stored.ReadAt

	// Marking again is a no-op; the original read timestamp survives.
	require.NoError(t, svc.MarkAsRead(context.Background(), created.ID))
	assert.Equal(t, firstReadAt, *repo.alerts[created.ID].ReadAt)
}

func TestMarkAsRead_MissingAlertIsNoOp(t *testing.T) {
	repo := newFakeAlertRepo()
	svc := newTestService(repo)

	assert.NoError(t, svc.MarkAsRead(context.Background(), "alert-missing"))
}
