package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/workpulse-backend-go/internal/domain/alert"
)

const lateAlertMessage = "You clocked in after the expected start time today. Please remember to arrive on time."

type AlertServiceImpl struct {
	alertRepo alert.Repository

	nowFunc func() time.Time
}

func NewAlertService(alertRepo alert.Repository) *AlertServiceImpl {
	return &AlertServiceImpl{
		alertRepo: alertRepo,
		nowFunc:   time.Now,
	}
}

// CreateAlert implements alert.Service.
func (s *AlertServiceImpl) CreateAlert(ctx context.Context, createdByUserID string, req alert.CreateAlertRequest) (alert.AlertResponse, error) {
	if err := req.Validate(); err != nil {
		return alert.AlertResponse{}, err
	}

	now := s.nowFunc().UTC()
	record := alert.Alert{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Message:    req.Message,
		AlertDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedBy:  createdByUserID,
	}

	created, err := s.alertRepo.Create(ctx, record)
	if err != nil {
		return alert.AlertResponse{}, fmt.Errorf("failed to create alert: %w", err)
	}

	return toResponse(created), nil
}

// GetEmployeeAlerts implements alert.Service.
func (s *AlertServiceImpl) GetEmployeeAlerts(ctx context.Context, employeeID string) ([]alert.AlertResponse, error) {
	alerts, err := s.alertRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	responses := make([]alert.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

// MarkAsRead implements alert.Service.
func (s *AlertServiceImpl) MarkAsRead(ctx context.Context, alertID string) error {
	if err := s.alertRepo.MarkAsRead(ctx, alertID); err != nil {
		return fmt.Errorf("failed to mark alert as read: %w", err)
	}
	return nil
}

// SendLateAlert implements alert.Service.
func (s *AlertServiceImpl) SendLateAlert(ctx context.Context, createdByUserID, employeeID string) (alert.AlertResponse, error) {
	return s.CreateAlert(ctx, createdByUserID, alert.CreateAlertRequest{
		EmployeeID: employeeID,
		Type:       alert.TypeLate,
		Message:    lateAlertMessage,
	})
}

func toResponse(a alert.Alert) alert.AlertResponse {
	var readAt *string
	if a.ReadAt != nil {
		s := a.ReadAt.UTC().Format("2006-01-02 15:04:05")
		readAt = &s
	}
	return alert.AlertResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Type:         a.Type,
		Message:      a.Message,
		AlertDate:    a.AlertDate.Format("2006-01-02"),
		IsRead:       a.IsRead,
		ReadAt:       readAt,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}
