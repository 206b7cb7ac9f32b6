package entity

import "github.com/google/uuid"

type SeatShape string

const (
	SeatShapeRect   SeatShape = "rect"
	SeatShapeCircle SeatShape = "circle"
)

// Seat is one selectable spot on a space's floor plan. Size is the radius
// for circles and the half-width for rects.
type Seat struct {
	ID      string    `db:"id"` // A1, W3, etc.
	SpaceID uuid.UUID `db:"space_id"`
	X       float64   `db:"pos_x"`
	Y       float64   `db:"pos_y"`
	Shape   SeatShape `db:"shape"`
	Size    float64   `db:"size"`
}
