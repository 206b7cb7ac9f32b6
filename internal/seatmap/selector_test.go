package seatmap

import (
	"fmt"
	"math/rand"
	"testing"

	"cowork-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeats(n int) []entity.Seat {
	seats := make([]entity.Seat, n)
	for i := range seats {
		seats[i] = entity.Seat{
			ID:    fmt.Sprintf("S%d", i+1),
			X:     float64(i * 40),
			Y:     20,
			Shape: entity.SeatShapeCircle,
			Size:  12,
		}
	}
	return seats
}

type recorder struct {
	calls [][]string
}

func (r *recorder) onChange(ids []string) {
	r.calls = append(r.calls, ids)
}

func TestToggle_SelectAndDeselect(t *testing.T) {
	rec := &recorder{}
	s := New(testSeats(3), nil, rec.onChange)

	assert.True(t, s.Toggle("S1"))
	assert.True(t, s.Toggle("S2"))
	assert.ElementsMatch(t, []string{"S1", "S2"}, s.Selection())

	assert.True(t, s.Toggle("S1"))
	assert.ElementsMatch(t, []string{"S2"}, s.Selection())

	require.Len(t, rec.calls, 3)
	assert.ElementsMatch(t, []string{"S1"}, rec.calls[0])
	assert.ElementsMatch(t, []string{"S1", "S2"}, rec.calls[1])
	assert.ElementsMatch(t, []string{"S2"}, rec.calls[2])
}

func TestToggle_BookedSeatIsNoop(t *testing.T) {
	rec := &recorder{}
	s := New(testSeats(3), []string{"S2"}, rec.onChange)

	assert.False(t, s.Toggle("S2"))
	assert.False(t, s.Toggle("S2"))
	assert.Empty(t, s.Selection())
	assert.Empty(t, rec.calls)
	assert.Equal(t, StateBooked, s.State("S2"))
}

func TestToggle_UnknownSeatIsNoop(t *testing.T) {
	rec := &recorder{}
	s := New(testSeats(2), nil, rec.onChange)

	assert.False(t, s.Toggle("Z9"))
	assert.Empty(t, s.Selection())
	assert.Empty(t, rec.calls)
}

func TestToggle_CapacityGuard(t *testing.T) {
	rec := &recorder{}
	s := New(testSeats(4), nil, rec.onChange, WithMaxSelectable(2))

	assert.True(t, s.Toggle("S1"))
	assert.True(t, s.Toggle("S2"))
	assert.True(t, s.AtCapacity())

	assert.False(t, s.Toggle("S3"))
	assert.ElementsMatch(t, []string{"S1", "S2"}, s.Selection())
	assert.Len(t, rec.calls, 2)

	// deselect at the maximum, then the freed slot can be taken
	assert.True(t, s.Toggle("S1"))
	assert.False(t, s.AtCapacity())
	assert.True(t, s.Toggle("S3"))
	assert.ElementsMatch(t, []string{"S2", "S3"}, s.Selection())
	assert.Len(t, rec.calls, 4)
}

func TestToggle_ZeroMaxSelectsNothing(t *testing.T) {
	s := New(testSeats(2), nil, nil, WithMaxSelectable(0))

	assert.True(t, s.AtCapacity())
	assert.False(t, s.Toggle("S1"))
	assert.Equal(t, StateDisabled, s.State("S1"))
}

func TestToggle_DefaultIsUnbounded(t *testing.T) {
	seats := testSeats(50)
	s := New(seats, nil, nil)

	for _, seat := range seats {
		require.True(t, s.Toggle(seat.ID))
	}
	assert.Equal(t, 50, s.Len())
	assert.False(t, s.AtCapacity())
	assert.Equal(t, Unbounded, s.Max())
}

func TestToggle_CallbackSeesSnapshot(t *testing.T) {
	var got []string
	s := New(testSeats(2), nil, func(ids []string) { got = ids })

	s.Toggle("S1")
	first := got
	s.Toggle("S2")

	assert.ElementsMatch(t, []string{"S1"}, first)
	assert.ElementsMatch(t, []string{"S1", "S2"}, got)
}

func TestToggle_RandomSequencesRespectInvariants(t *testing.T) {
	seats := testSeats(10)
	booked := []string{"S3", "S7"}
	rng := rand.New(rand.NewSource(42))

	for max := 0; max <= 5; max++ {
		calls := 0
		s := New(seats, booked, func([]string) { calls++ }, WithMaxSelectable(max))
		changes := 0

		for i := 0; i < 500; i++ {
			id := seats[rng.Intn(len(seats))].ID
			if s.Toggle(id) {
				changes++
			}
			require.LessOrEqual(t, s.Len(), max)
			for _, b := range booked {
				require.False(t, s.IsSelected(b))
			}
		}
		assert.Equal(t, changes, calls, "max=%d", max)
	}
}

func TestView_States(t *testing.T) {
	s := New(testSeats(4), []string{"S4"}, nil, WithMaxSelectable(2))
	s.Toggle("S1")
	s.Toggle("S2")

	views := s.View()
	require.Len(t, views, 4)

	want := []State{StateSelected, StateSelected, StateDisabled, StateBooked}
	for i, v := range views {
		assert.Equal(t, want[i], v.State, v.Seat.ID)
		assert.Equal(t, want[i].Fill(), v.Fill)
	}
	assert.True(t, views[0].Interactive)
	assert.False(t, views[2].Interactive)
	assert.False(t, views[3].Interactive)
}

func TestState_FillsAreDistinct(t *testing.T) {
	seen := map[string]State{}
	for _, st := range []State{StateBooked, StateSelected, StateDisabled, StateAvailable} {
		prev, dup := seen[st.Fill()]
		assert.False(t, dup, "%s shares a fill with %s", st, prev)
		seen[st.Fill()] = st
	}
}

func TestBooked_IgnoresIdsOutsideLayout(t *testing.T) {
	s := New(testSeats(2), []string{"S2", "X1"}, nil)
	assert.Equal(t, []string{"S2"}, s.Booked())
}
