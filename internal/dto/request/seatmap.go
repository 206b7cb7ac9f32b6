package request

// SeatMapQuery is read from the query string of GET /api/spaces/{id}/seats.
type SeatMapQuery struct {
	Date          string  `validate:"required,datetime=2006-01-02"`
	Start         string  `validate:"required,datetime=15:04"`
	Hours         float64 `validate:"gt=0,lte=24"`
	MaxSelectable *int    `validate:"omitempty,gte=0"`
}

// SelectionRequest replays seat taps against a fresh seat map.
type SelectionRequest struct {
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Start         string   `json:"start" validate:"required,datetime=15:04"`
	Hours         float64  `json:"hours" validate:"gt=0,lte=24"`
	MaxSelectable *int     `json:"max_selectable,omitempty" validate:"omitempty,gte=0"`
	Toggles       []string `json:"toggles" validate:"required,min=1,max=500,dive,required"`
}
