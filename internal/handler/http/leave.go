package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetLeaveTypes(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler. Accepts a multipart form with a JSON 'data'
// field and an optional 'attachment' file.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "No employee profile linked to this account")
		return
	}

	var req leave.CreateLeaveRequestRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, fileHeader, err := r.FormFile("attachment")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer file.Close()
		req.Attachment = file
		req.AttachmentFilename = fileHeader.Filename
	}

	result, err := h.leaveService.CreateLeaveRequest(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// GetMyRequests implements LeaveHandler.
func (h *leaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "No employee profile linked to this account")
		return
	}

	results, err := h.leaveService.GetEmployeeLeaveRequests(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetPending implements LeaveHandler. Admin-gated at the router.
func (h *leaveHandlerImpl) GetPending(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.GetPendingLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements LeaveHandler. Admin-gated at the router.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.leaveService.DecideLeaveRequest(r.Context(), leave.DecideLeaveRequestRequest{
		RequestID:      chi.URLParam(r, "id"),
		ApproverUserID: userID,
		Approve:        true,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject implements LeaveHandler. Admin-gated at the router.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var body struct {
		RejectionReason string `json:"rejection_reason"`
	}
	if r.Body != nil {
		// Body is optional; a missing reason falls back to a generic message.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	result, err := h.leaveService.DecideLeaveRequest(r.Context(), leave.DecideLeaveRequestRequest{
		RequestID:       chi.URLParam(r, "id"),
		ApproverUserID:  userID,
		Approve:         false,
		RejectionReason: body.RejectionReason,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

// GetLeaveTypes implements LeaveHandler.
func (h *leaveHandlerImpl) GetLeaveTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.leaveService.GetLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
