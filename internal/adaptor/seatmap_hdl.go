package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/usecase"
	"cowork-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatMapHandler struct {
	service usecase.SeatMapService
	log     *zap.Logger
}

func NewSeatMapHandler(service usecase.SeatMapService, log *zap.Logger) *SeatMapHandler {
	return &SeatMapHandler{
		service: service,
		log:     log.With(zap.String("handler", "seatmap")),
	}
}

// GetSeatMap handles GET /api/spaces/{id}/seats?date=2026-03-02&start=09:00&hours=3&max=2
func (h *SeatMapHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "id")
	query := r.URL.Query()

	hours, err := strconv.ParseFloat(query.Get("hours"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hours", map[string]string{"hours": "Must be a number"})
		return
	}

	max, err := utils.ParseOptionalInt(query.Get("max"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid max", map[string]string{"max": err.Error()})
		return
	}

	req := &request.SeatMapQuery{
		Date:          query.Get("date"),
		Start:         query.Get("start"),
		Hours:         hours,
		MaxSelectable: max,
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), spaceID, req)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ReplaySelection handles POST /api/spaces/{id}/selection
func (h *SeatMapHandler) ReplaySelection(w http.ResponseWriter, r *http.Request) {
	spaceID := chi.URLParam(r, "id")

	var req request.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	selection, err := h.service.ReplaySelection(r.Context(), spaceID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "replay selection")
		return
	}

	utils.ResponseSuccess(w, "success", selection)
}
