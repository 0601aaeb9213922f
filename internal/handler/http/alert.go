package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/workpulse-backend-go/internal/domain/alert"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

type AlertHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyAlerts(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	SendLateAlert(w http.ResponseWriter, r *http.Request)
}

type alertHandlerImpl struct {
	alertService alert.Service
}

func NewAlertHandler(alertService alert.Service) AlertHandler {
	return &alertHandlerImpl{
		alertService: alertService,
	}
}

// Create implements AlertHandler. Admin-gated at the router.
func (h *alertHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req alert.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.alertService.CreateAlert(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Alert created", result)
}

// GetMyAlerts implements AlertHandler.
func (h *alertHandlerImpl) GetMyAlerts(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "No employee profile linked to this account")
		return
	}

	results, err := h.alertService.GetEmployeeAlerts(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MarkAsRead implements AlertHandler. Marking a missing or already-read
// alert succeeds without effect.
func (h *alertHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.alertService.MarkAsRead(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Alert marked as read", nil)
}

// SendLateAlert implements AlertHandler. Admin-gated at the router.
func (h *alertHandlerImpl) SendLateAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var body struct {
		EmployeeID string `json:"employee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.alertService.SendLateAlert(r.Context(), userID, body.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Late alert sent", result)
}
