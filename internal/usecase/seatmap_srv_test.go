package usecase

import (
	"errors"
	"testing"
	"time"

	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/data/repository"
	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/seatmap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type seatMapFixture struct {
	spaces  *MockSpaceRepository
	booked  *MockBookingSeatRepository
	service SeatMapService
	spaceID uuid.UUID
}

func newSeatMapFixture(t *testing.T, max *int, bookedIDs []string) *seatMapFixture {
	t.Helper()

	f := &seatMapFixture{
		spaces:  new(MockSpaceRepository),
		booked:  new(MockBookingSeatRepository),
		spaceID: uuid.New(),
	}

	seats := []entity.Seat{
		{ID: "A1", SpaceID: f.spaceID, X: 10, Y: 10, Shape: entity.SeatShapeCircle, Size: 8},
		{ID: "A2", SpaceID: f.spaceID, X: 30, Y: 10, Shape: entity.SeatShapeCircle, Size: 8},
		{ID: "B1", SpaceID: f.spaceID, X: 10, Y: 40, Shape: entity.SeatShapeRect, Size: 10},
		{ID: "B2", SpaceID: f.spaceID, X: 30, Y: 40, Shape: entity.SeatShapeRect, Size: 10},
	}

	f.spaces.On("FindByID", mock.Anything, f.spaceID).Return(&entity.Space{
		Base:          entity.Base{ID: f.spaceID},
		Name:          "Quiet room",
		MaxSelectable: max,
	}, nil)
	f.spaces.On("FindSeats", mock.Anything, f.spaceID).Return(seats, nil)
	f.booked.On("FindBookedSeatIDs", mock.Anything, f.spaceID, mock.Anything).Return(bookedIDs, nil)

	repo := &repository.Repository{Space: f.spaces, BookingSeat: f.booked}
	f.service = NewSeatMapService(repo, zap.NewNop())
	return f
}

func intPtr(n int) *int { return &n }

func TestSeatMapService_GetSeatMap(t *testing.T) {
	f := newSeatMapFixture(t, intPtr(2), []string{"B2"})
	label := "Window side"
	f.spaces.On("FindDecorations", mock.Anything, f.spaceID).Return([]entity.Decoration{
		{Kind: entity.DecorationTable, X: 20, Y: 25, Width: 40, Height: 10},
		{Kind: entity.DecorationLabel, X: 0, Y: 0, Text: &label, FontSize: 12},
		{Kind: entity.DecorationOverlay, X: 0, Y: 0, Width: 100, Height: 60},
	}, nil)

	resp, err := f.service.GetSeatMap(t.Context(), f.spaceID.String(), &request.SeatMapQuery{
		Date: "2026-03-02", Start: "09:00", Hours: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "Quiet room", resp.SpaceName)
	assert.Equal(t, 2, *resp.MaxSelectable)
	assert.Equal(t, []string{"B2"}, resp.BookedSeatIDs)
	require.Len(t, resp.Seats, 4)
	assert.Equal(t, seatmap.StateAvailable, resp.Seats[0].State)
	assert.Equal(t, seatmap.StateBooked, resp.Seats[3].State)
	assert.False(t, resp.Seats[3].Interactive)
	assert.Len(t, resp.Tables, 1)
	assert.Len(t, resp.Overlays, 1)
	require.Len(t, resp.Labels, 1)
	assert.Equal(t, "Window side", resp.Labels[0].Text)

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	f.booked.AssertCalled(t, "FindBookedSeatIDs", mock.Anything, f.spaceID, mock.MatchedBy(func(w entity.TimeWindow) bool {
		return w.Start.Equal(start) && w.End.Equal(start.Add(3*time.Hour))
	}))
}

func TestSeatMapService_GetSeatMap_QueryMaxOverridesSpace(t *testing.T) {
	f := newSeatMapFixture(t, intPtr(2), nil)
	f.spaces.On("FindDecorations", mock.Anything, f.spaceID).Return([]entity.Decoration{}, nil)

	resp, err := f.service.GetSeatMap(t.Context(), f.spaceID.String(), &request.SeatMapQuery{
		Date: "2026-03-02", Start: "09:00", Hours: 1, MaxSelectable: intPtr(0),
	})

	require.NoError(t, err)
	assert.True(t, resp.AtCapacity)
	for _, seat := range resp.Seats {
		assert.Equal(t, seatmap.StateDisabled, seat.State)
	}
}

func TestSeatMapService_GetSeatMap_Errors(t *testing.T) {
	f := newSeatMapFixture(t, nil, nil)
	missing := uuid.New()
	f.spaces.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := f.service.GetSeatMap(t.Context(), "not-a-uuid", &request.SeatMapQuery{Date: "2026-03-02", Start: "09:00", Hours: 1})
	assert.ErrorContains(t, err, "invalid space ID")

	_, err = f.service.GetSeatMap(t.Context(), missing.String(), &request.SeatMapQuery{Date: "2026-03-02", Start: "09:00", Hours: 1})
	assert.ErrorContains(t, err, "not found")

	_, err = f.service.GetSeatMap(t.Context(), f.spaceID.String(), &request.SeatMapQuery{Date: "03/02/2026", Start: "09:00", Hours: 1})
	assert.ErrorContains(t, err, "validation failed")
}

func TestSeatMapService_ReplaySelection(t *testing.T) {
	f := newSeatMapFixture(t, intPtr(2), []string{"B2"})

	resp, err := f.service.ReplaySelection(t.Context(), f.spaceID.String(), &request.SelectionRequest{
		Date:    "2026-03-02",
		Start:   "13:30",
		Hours:   2,
		Toggles: []string{"A1", "B2", "A2", "B1", "A1", "B1", "Z9"},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A2", "B1"}, resp.Selection)
	assert.True(t, resp.AtCapacity)
	assert.Equal(t, 4, resp.Notifications)

	applied := make([]bool, len(resp.Toggles))
	for i, r := range resp.Toggles {
		applied[i] = r.Applied
	}
	assert.Equal(t, []bool{true, false, true, false, true, true, false}, applied)
	assert.Equal(t, "already booked", resp.Toggles[1].Reason)
	assert.Equal(t, "selection limit reached", resp.Toggles[3].Reason)
	assert.Equal(t, "unknown seat", resp.Toggles[6].Reason)
}

func TestSeatMapService_ReplaySelection_Unbounded(t *testing.T) {
	f := newSeatMapFixture(t, nil, nil)

	resp, err := f.service.ReplaySelection(t.Context(), f.spaceID.String(), &request.SelectionRequest{
		Date:    "2026-03-02",
		Start:   "08:00",
		Hours:   1,
		Toggles: []string{"A1", "A2", "B1", "B2"},
	})

	require.NoError(t, err)
	assert.Nil(t, resp.MaxSelectable)
	assert.Len(t, resp.Selection, 4)
	assert.False(t, resp.AtCapacity)
}

func TestSeatMapService_ReplaySelection_RepositoryError(t *testing.T) {
	f := &seatMapFixture{
		spaces:  new(MockSpaceRepository),
		booked:  new(MockBookingSeatRepository),
		spaceID: uuid.New(),
	}
	f.spaces.On("FindByID", mock.Anything, f.spaceID).Return(&entity.Space{Base: entity.Base{ID: f.spaceID}}, nil)
	f.spaces.On("FindSeats", mock.Anything, f.spaceID).Return([]entity.Seat{}, nil)
	f.booked.On("FindBookedSeatIDs", mock.Anything, f.spaceID, mock.Anything).Return(nil, errors.New("timeout"))
	s := NewSeatMapService(&repository.Repository{Space: f.spaces, BookingSeat: f.booked}, zap.NewNop())

	_, err := s.ReplaySelection(t.Context(), f.spaceID.String(), &request.SelectionRequest{
		Date: "2026-03-02", Start: "08:00", Hours: 1, Toggles: []string{"A1"},
	})

	assert.ErrorContains(t, err, "check seat availability")
}
