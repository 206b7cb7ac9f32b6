package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	UserID     uuid.UUID     `db:"user_id"`
	SpaceID    uuid.UUID     `db:"space_id"`
	StartsAt   time.Time     `db:"starts_at"`
	EndsAt     time.Time     `db:"ends_at"`
	People     int           `db:"people"`
	TotalPrice float64       `db:"total_price"`
	Status     BookingStatus `db:"status"`
}

// TimeWindow is the half-open interval [Start, End) a seat is requested for.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}
