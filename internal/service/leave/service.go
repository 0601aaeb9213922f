package leave

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/email"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
)

const defaultRejectionReason = "Your leave request was not approved. Please contact HR for details."

type LeaveServiceImpl struct {
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	attendanceRepo   attendance.Repository
	employeeRepo     employee.Repository
	txManager        database.TxManager
	emailService     email.EmailService
	fileStorage      storage.FileStorage

	nowFunc func() time.Time
}

func NewLeaveService(
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	txManager database.TxManager,
	emailService email.EmailService,
	fileStorage storage.FileStorage,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		attendanceRepo:   attendanceRepo,
		employeeRepo:     employeeRepo,
		txManager:        txManager,
		emailService:     emailService,
		fileStorage:      fileStorage,
		nowFunc:          time.Now,
	}
}

// CreateLeaveRequest implements leave.Service.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	leaveType, err := s.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to load leave type: %w", err)
	}
	if leaveType == nil || !leaveType.IsActive {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidLeaveType
	}

	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	used, err := s.leaveRequestRepo.SumApprovedDays(ctx, employeeID, leaveType.ID, startDate.Year())
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	if used+totalDays > leaveType.MaxDaysPerYear {
		return leave.LeaveRequestResponse{}, leave.ErrQuotaExceeded
	}

	request := leave.LeaveRequest{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      leave.RequestStatusPending,
	}

	if req.Attachment != nil {
		key := fmt.Sprintf("leave-attachments/%s/%s%s", employeeID, uuid.NewString(), path.Ext(req.AttachmentFilename))
		saved, err := s.fileStorage.Save(ctx, key, req.Attachment)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to store attachment: %w", err)
		}
		url := s.fileStorage.URL(saved)
		request.AttachmentURL = &url
	}

	created, err := s.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if created.LeaveTypeName == nil {
		created.LeaveTypeName = &leaveType.Name
	}

	return toResponse(created), nil
}

// GetEmployeeLeaveRequests implements leave.Service.
func (s *LeaveServiceImpl) GetEmployeeLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRequestRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// GetPendingLeaveRequests implements leave.Service.
func (s *LeaveServiceImpl) GetPendingLeaveRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRequestRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// DecideLeaveRequest implements leave.Service.
func (s *LeaveServiceImpl) DecideLeaveRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRequestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status.Terminal() {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := s.nowFunc().UTC()
	request.ApprovedBy = &req.ApproverUserID
	request.ApprovedAt = &now

	if req.Approve {
		request.Status = leave.RequestStatusApproved

		// Status change and attendance backfill commit together; a failure on
		// any date rolls the whole decision back.
		err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
			if err := s.leaveRequestRepo.UpdateDecision(ctx, request); err != nil {
				return fmt.Errorf("failed to update leave request: %w", err)
			}
			for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
				if err := s.attendanceRepo.SetOnLeave(ctx, request.EmployeeID, day); err != nil {
					return fmt.Errorf("failed to mark %s on leave: %w", day.Format("2006-01-02"), err)
				}
			}
			return nil
		})
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
	} else {
		request.Status = leave.RequestStatusRejected
		reason := req.RejectionReason
		if reason == "" {
			reason = defaultRejectionReason
		}
		request.RejectionReason = &reason

		if err := s.leaveRequestRepo.UpdateDecision(ctx, request); err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
		}
	}

	s.notifyDecision(ctx, request)

	return toResponse(request), nil
}

// GetLeaveTypes implements leave.Service.
func (s *LeaveServiceImpl) GetLeaveTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	types, err := s.leaveTypeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.LeaveTypeResponse{
			ID:             lt.ID,
			Name:           lt.Name,
			Description:    lt.Description,
			MaxDaysPerYear: lt.MaxDaysPerYear,
		})
	}
	return responses, nil
}

// notifyDecision emails the employee about the decision. Best effort: the
// decision has already committed, so failures are only logged.
func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, request leave.LeaveRequest) {
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		slog.Warn("Skipping leave decision email, employee lookup failed",
			"leave_request_id", request.ID,
			"employee_id", request.EmployeeID,
			"error", err,
		)
		return
	}

	leaveTypeName := ""
	if request.LeaveTypeName != nil {
		leaveTypeName = *request.LeaveTypeName
	}
	startDate := request.StartDate.Format("2006-01-02")
	endDate := request.EndDate.Format("2006-01-02")

	if request.Status == leave.RequestStatusApproved {
		err = s.emailService.SendLeaveApproved(emp.Email, emp.FullName, leaveTypeName, startDate, endDate, request.TotalDays)
	} else {
		reason := ""
		if request.RejectionReason != nil {
			reason = *request.RejectionReason
		}
		err = s.emailService.SendLeaveRejected(emp.Email, emp.FullName, leaveTypeName, startDate, endDate, reason)
	}
	if err != nil {
		slog.Error("Failed to send leave decision email",
			"leave_request_id", request.ID,
			"employee_id", request.EmployeeID,
			"status", request.Status,
			"error", err,
		)
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format("2006-01-02 15:04:05")
	return &format
}

func toResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		LeaveTypeID:     request.LeaveTypeID,
		LeaveTypeName:   request.LeaveTypeName,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		TotalDays:       request.TotalDays,
		Reason:          request.Reason,
		AttachmentURL:   request.AttachmentURL,
		Status:          request.Status,
		ApprovedBy:      request.ApprovedBy,
		ApprovedAt:      timePtrToString(request.ApprovedAt),
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}
	return responses
}
