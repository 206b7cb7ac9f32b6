package wire

import (
	"cowork-booking/internal/adaptor"
	"cowork-booking/internal/data/repository"
	"cowork-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSettings(
	r chi.Router,
	settingsHandler *adaptor.SettingsHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/payment-settings - Hourly rates and card fee
	r.Get("/api/payment-settings", settingsHandler.GetPaymentSettings)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/payment-settings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// PUT /api/admin/payment-settings - Update rates and card fee
		r.Put("/", settingsHandler.UpdatePaymentSettings)
	})
}
