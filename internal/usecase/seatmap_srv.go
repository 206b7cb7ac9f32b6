package usecase

import (
	"context"
	"fmt"

	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/data/repository"
	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/dto/response"
	"cowork-booking/internal/seatmap"
	"cowork-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatMapService interface {
	GetSeatMap(ctx context.Context, spaceID string, req *request.SeatMapQuery) (*response.SeatMapResponse, error)
	ReplaySelection(ctx context.Context, spaceID string, req *request.SelectionRequest) (*response.SelectionResponse, error)
}

type seatMapService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatMapService(repo *repository.Repository, log *zap.Logger) SeatMapService {
	return &seatMapService{
		repo: repo,
		log:  log.With(zap.String("service", "seatmap")),
	}
}

// layout is everything needed to build a selector for one space and window.
type layout struct {
	space       *entity.Space
	seats       []entity.Seat
	booked      []string
	decorations []entity.Decoration
}

func (s *seatMapService) GetSeatMap(ctx context.Context, spaceID string, req *request.SeatMapQuery) (*response.SeatMapResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Seat map query validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	l, err := s.loadLayout(ctx, spaceID, req.Date, req.Start, req.Hours, true)
	if err != nil {
		return nil, err
	}

	max := effectiveMax(req.MaxSelectable, l.space.MaxSelectable)
	sel := seatmap.New(l.seats, l.booked, nil, selectorOptions(max)...)

	resp := &response.SeatMapResponse{
		SpaceID:       l.space.ID.String(),
		SpaceName:     l.space.Name,
		MaxSelectable: max,
		AtCapacity:    sel.AtCapacity(),
		BookedSeatIDs: sel.Booked(),
		Seats:         make([]response.SeatResponse, 0, len(l.seats)),
		Tables:        []response.TableResponse{},
		Overlays:      []response.OverlayResponse{},
		Labels:        []response.LabelResponse{},
	}

	for _, v := range sel.View() {
		resp.Seats = append(resp.Seats, response.SeatToResponse(v))
	}

	for _, d := range l.decorations {
		switch d.Kind {
		case entity.DecorationTable:
			resp.Tables = append(resp.Tables, response.TableResponse{
				X: d.X, Y: d.Y, Width: d.Width, Height: d.Height, ImageURL: d.ImageURL,
			})
		case entity.DecorationOverlay:
			resp.Overlays = append(resp.Overlays, response.OverlayResponse{
				X: d.X, Y: d.Y, Width: d.Width, Height: d.Height, ImageURL: d.ImageURL,
			})
		case entity.DecorationLabel:
			var text string
			if d.Text != nil {
				text = *d.Text
			}
			resp.Labels = append(resp.Labels, response.LabelResponse{
				X: d.X, Y: d.Y, Text: text, FontSize: d.FontSize,
			})
		default:
			s.log.Warn("Unknown decoration kind",
				zap.String("space_id", spaceID),
				zap.String("kind", string(d.Kind)),
			)
		}
	}

	s.log.Info("Seat map retrieved",
		zap.String("space_id", spaceID),
		zap.Int("seats", len(l.seats)),
		zap.Int("booked", len(resp.BookedSeatIDs)),
	)

	return resp, nil
}

// ReplaySelection runs the toggles, in order, through a fresh selector and
// reports which of them changed the selection.
func (s *seatMapService) ReplaySelection(ctx context.Context, spaceID string, req *request.SelectionRequest) (*response.SelectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Selection validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	l, err := s.loadLayout(ctx, spaceID, req.Date, req.Start, req.Hours, false)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(l.seats))
	for _, seat := range l.seats {
		known[seat.ID] = struct{}{}
	}

	notifications := 0
	var latest []string
	max := effectiveMax(req.MaxSelectable, l.space.MaxSelectable)
	sel := seatmap.New(l.seats, l.booked, func(ids []string) {
		notifications++
		latest = ids
	}, selectorOptions(max)...)

	results := make([]response.ToggleResult, len(req.Toggles))
	for i, seatID := range req.Toggles {
		results[i] = response.ToggleResult{SeatID: seatID}

		switch _, ok := known[seatID]; {
		case !ok:
			results[i].Reason = "unknown seat"
		case sel.IsBooked(seatID):
			results[i].Reason = "already booked"
		case !sel.IsSelected(seatID) && sel.AtCapacity():
			results[i].Reason = "selection limit reached"
		}

		results[i].Applied = sel.Toggle(seatID)
	}

	if latest == nil {
		latest = []string{}
	}

	s.log.Info("Selection replayed",
		zap.String("space_id", spaceID),
		zap.Int("toggles", len(req.Toggles)),
		zap.Int("selected", len(latest)),
	)

	return &response.SelectionResponse{
		SpaceID:       l.space.ID.String(),
		MaxSelectable: max,
		Selection:     latest,
		AtCapacity:    sel.AtCapacity(),
		Notifications: notifications,
		Toggles:       results,
	}, nil
}

func (s *seatMapService) loadLayout(ctx context.Context, spaceID, date, start string, hours float64, withDecorations bool) (*layout, error) {
	id, err := uuid.Parse(spaceID)
	if err != nil {
		return nil, fmt.Errorf("invalid space ID format %s: %w", spaceID, err)
	}

	begin, end, err := utils.ParseWindow(date, start, hours)
	if err != nil {
		return nil, err
	}

	space, err := s.repo.Space.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get space %s: %w", spaceID, err)
	}
	if space == nil {
		return nil, fmt.Errorf("space %s not found", spaceID)
	}

	seats, err := s.repo.Space.FindSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seats for space %s: %w", spaceID, err)
	}

	booked, err := s.repo.BookingSeat.FindBookedSeatIDs(ctx, id, entity.TimeWindow{Start: begin, End: end})
	if err != nil {
		s.log.Error("Failed to check booked seats", zap.Error(err))
		return nil, fmt.Errorf("check seat availability: %w", err)
	}

	l := &layout{space: space, seats: seats, booked: booked}

	if withDecorations {
		l.decorations, err = s.repo.Space.FindDecorations(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get decorations for space %s: %w", spaceID, err)
		}
	}

	return l, nil
}

// effectiveMax prefers the caller's maximum over the space default. nil
// means unbounded.
func effectiveMax(requested, spaceDefault *int) *int {
	if requested != nil {
		return requested
	}
	return spaceDefault
}

func selectorOptions(max *int) []seatmap.Option {
	if max == nil {
		return nil
	}
	return []seatmap.Option{seatmap.WithMaxSelectable(*max)}
}
