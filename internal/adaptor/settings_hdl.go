package adaptor

import (
	"encoding/json"
	"net/http"

	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/usecase"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingsHandler struct {
	service usecase.SettingsService
	log     *zap.Logger
}

func NewSettingsHandler(service usecase.SettingsService, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log.With(zap.String("handler", "settings")),
	}
}

// GetPaymentSettings handles GET /api/payment-settings (public)
func (h *SettingsHandler) GetPaymentSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetPaymentSettingsResponse(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get payment settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// UpdatePaymentSettings handles PUT /api/admin/payment-settings (admin only)
func (h *SettingsHandler) UpdatePaymentSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePaymentSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	settings, err := h.service.UpdatePaymentSettings(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update payment settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}
