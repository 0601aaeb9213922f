package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/workpulse-backend-go/internal/domain/position"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

type PositionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type positionHandlerImpl struct {
	positionService position.Service
}

func NewPositionHandler(positionService position.Service) PositionHandler {
	return &positionHandlerImpl{
		positionService: positionService,
	}
}

// List implements PositionHandler.
func (h *positionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.positionService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Get implements PositionHandler.
func (h *positionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.positionService.GetPosition(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
