package seatmap

import "cowork-booking/internal/data/entity"

type State string

const (
	StateBooked    State = "booked"
	StateSelected  State = "selected"
	StateDisabled  State = "disabled"
	StateAvailable State = "available"
)

var fills = map[State]string{
	StateBooked:    "#9ca3af",
	StateSelected:  "#16a34a",
	StateDisabled:  "#e5e7eb",
	StateAvailable: "#ffffff",
}

// Fill is the colour a seat in state st is painted with.
func (st State) Fill() string {
	return fills[st]
}

// Interactive reports whether a seat in state st accepts a toggle.
func (st State) Interactive() bool {
	return st == StateSelected || st == StateAvailable
}

// State resolves the render state of seatID. Booked wins over everything,
// then selected, then the capacity guard.
func (s *Selector) State(seatID string) State {
	switch {
	case s.IsBooked(seatID):
		return StateBooked
	case s.IsSelected(seatID):
		return StateSelected
	case s.AtCapacity():
		return StateDisabled
	default:
		return StateAvailable
	}
}

type SeatView struct {
	Seat        entity.Seat
	State       State
	Fill        string
	Interactive bool
}

// View returns every seat of the layout, in layout order, with its state.
func (s *Selector) View() []SeatView {
	views := make([]SeatView, len(s.seats))
	for i, seat := range s.seats {
		st := s.State(seat.ID)
		views[i] = SeatView{
			Seat:        seat,
			State:       st,
			Fill:        st.Fill(),
			Interactive: st.Interactive(),
		}
	}
	return views
}
