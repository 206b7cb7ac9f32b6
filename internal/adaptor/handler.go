package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cowork-booking/internal/data/backend"
	"cowork-booking/internal/usecase"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	SeatMap  *SeatMapHandler
	Booking  *BookingHandler
	Settings *SettingsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		SeatMap:  NewSeatMapHandler(service.SeatMap, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Settings: NewSettingsHandler(service.Settings, log),
	}
}

// handleServiceError maps a service error to a response
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, backend.ErrApplyPackage):
		log.Error(operation+" failed - backend rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Package could not be applied, the booking was not discounted")

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
