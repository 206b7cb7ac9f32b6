package wire

import (
	"cowork-booking/internal/adaptor"
	"cowork-booking/internal/data/repository"
	"cowork-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require session) ====================
	r.Route("/api/booking", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/booking/packages - Packages usable by the current user
		r.Get("/packages", bookingHandler.GetPackages)

		// POST /api/booking/quote - Price breakdown for hours and people
		r.Post("/quote", bookingHandler.Quote)

		// POST /api/booking/apply-package - Consume a package on a booking
		r.Post("/apply-package", bookingHandler.ApplyPackage)
	})
}
