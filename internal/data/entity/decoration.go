package entity

import "github.com/google/uuid"

type DecorationKind string

const (
	DecorationTable   DecorationKind = "table"
	DecorationOverlay DecorationKind = "overlay"
	DecorationLabel   DecorationKind = "label"
)

// Decoration is a row of space_decorations. Tables, overlays and labels
// share the table and are split by kind when the seat map is assembled.
type Decoration struct {
	BaseSimple
	SpaceID  uuid.UUID      `db:"space_id"`
	Kind     DecorationKind `db:"kind"`
	X        float64        `db:"pos_x"`
	Y        float64        `db:"pos_y"`
	Width    float64        `db:"width"`
	Height   float64        `db:"height"`
	ImageURL *string        `db:"image_url"`
	Text     *string        `db:"text"`
	FontSize float64        `db:"font_size"`
}

type Table struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	ImageURL *string
}

type Overlay struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	ImageURL *string
}

type Label struct {
	X        float64
	Y        float64
	Text     string
	FontSize float64
}
