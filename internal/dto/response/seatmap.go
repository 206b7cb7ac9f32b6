package response

import (
	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/seatmap"
)

type SeatResponse struct {
	ID          string           `json:"id"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	Shape       entity.SeatShape `json:"shape"`
	Size        float64          `json:"size"`
	State       seatmap.State    `json:"state"`
	Fill        string           `json:"fill"`
	Interactive bool             `json:"interactive"`
}

type TableResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ImageURL *string `json:"image_url,omitempty"`
}

type OverlayResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	ImageURL *string `json:"image_url,omitempty"`
}

type LabelResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
}

type SeatMapResponse struct {
	SpaceID       string            `json:"space_id"`
	SpaceName     string            `json:"space_name"`
	MaxSelectable *int              `json:"max_selectable"` // null = unbounded
	AtCapacity    bool              `json:"at_capacity"`
	BookedSeatIDs []string          `json:"booked_seat_ids"`
	Seats         []SeatResponse    `json:"seats"`
	Tables        []TableResponse   `json:"tables"`
	Overlays      []OverlayResponse `json:"overlays"`
	Labels        []LabelResponse   `json:"labels"`
}

type ToggleResult struct {
	SeatID  string `json:"seat_id"`
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

type SelectionResponse struct {
	SpaceID       string         `json:"space_id"`
	MaxSelectable *int           `json:"max_selectable"`
	Selection     []string       `json:"selection"`
	AtCapacity    bool           `json:"at_capacity"`
	Notifications int            `json:"notifications"`
	Toggles       []ToggleResult `json:"toggles"`
}

// SeatToResponse converts a rendered seat
func SeatToResponse(v seatmap.SeatView) SeatResponse {
	return SeatResponse{
		ID:          v.Seat.ID,
		X:           v.Seat.X,
		Y:           v.Seat.Y,
		Shape:       v.Seat.Shape,
		Size:        v.Seat.Size,
		State:       v.State,
		Fill:        v.Fill,
		Interactive: v.Interactive,
	}
}
