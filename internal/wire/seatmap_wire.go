package wire

import (
	"cowork-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeatMap(r chi.Router, seatMapHandler *adaptor.SeatMapHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/spaces/{id}", func(r chi.Router) {
		// GET /api/spaces/{id}/seats - Seat map for a time window
		r.Get("/seats", seatMapHandler.GetSeatMap)

		// POST /api/spaces/{id}/selection - Replay seat toggles
		r.Post("/selection", seatMapHandler.ReplaySelection)
	})
}
