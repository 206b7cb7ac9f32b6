package repository

import (
	"context"
	"fmt"

	"cowork-booking/internal/data/entity"
	"cowork-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingSeatRepository interface {
	// FindBookedSeatIDs returns seats of a space held by a live booking that
	// overlaps window.
	FindBookedSeatIDs(ctx context.Context, spaceID uuid.UUID, window entity.TimeWindow) ([]string, error)
}

type bookingSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingSeatRepository(db database.PgxIface, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) FindBookedSeatIDs(ctx context.Context, spaceID uuid.UUID, window entity.TimeWindow) ([]string, error) {
	query := `
		SELECT DISTINCT bs.seat_id
		FROM booking_seats bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE b.space_id = $1
		  AND b.status IN ($2, $3)
		  AND b.starts_at < $5
		  AND b.ends_at > $4
		  AND b.deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query,
		spaceID,
		entity.BookingStatusPending,
		entity.BookingStatusConfirmed,
		window.Start,
		window.End,
	)
	if err != nil {
		r.log.Error("Failed to find booked seats",
			zap.Error(err),
			zap.String("space_id", spaceID.String()),
			zap.Time("start", window.Start),
			zap.Time("end", window.End),
		)
		return nil, fmt.Errorf("find booked seats for space %s: %w", spaceID.String(), err)
	}
	defer rows.Close()

	var seatIDs []string
	for rows.Next() {
		var seatID string
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan booked seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booked seat row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booked seat rows: %w", err)
	}

	return seatIDs, nil
}
