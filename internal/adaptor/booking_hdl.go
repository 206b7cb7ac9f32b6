package adaptor

import (
	"encoding/json"
	"net/http"

	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/usecase"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetPackages handles GET /api/booking/packages (protected)
func (h *BookingHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := currentUser(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	packages, err := h.service.ListPackages(r.Context(), userID, role)
	if err != nil {
		handleServiceError(h.log, w, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// Quote handles POST /api/booking/quote (protected)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := currentUser(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	quote, err := h.service.Quote(r.Context(), userID, role, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "quote booking")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// ApplyPackage handles POST /api/booking/apply-package (protected)
func (h *BookingHandler) ApplyPackage(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ApplyPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ApplyPackage(r.Context(), userID, &req); err != nil {
		handleServiceError(h.log, w, err, "apply package")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func currentUser(r *http.Request) (string, entity.MemberRole, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return userID.String(), entity.MemberRole(role), true
}
