package entity

import "github.com/google/uuid"

type BookingSeat struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	SeatID    string    `db:"seat_id"`
}
