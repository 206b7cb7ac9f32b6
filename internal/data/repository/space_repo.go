package repository

import (
	"context"
	"fmt"

	"cowork-booking/internal/data/entity"
	"cowork-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SpaceRepository loads a space and its floor plan.
type SpaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Space, error)
	FindSeats(ctx context.Context, spaceID uuid.UUID) ([]entity.Seat, error)
	FindDecorations(ctx context.Context, spaceID uuid.UUID) ([]entity.Decoration, error)
}

type spaceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpaceRepository(db database.PgxIface, log *zap.Logger) SpaceRepository {
	return &spaceRepository{
		db:  db,
		log: log.With(zap.String("repository", "space")),
	}
}

func (r *spaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Space, error) {
	query := `
		SELECT id, name, max_selectable, created_at, updated_at, deleted_at
		FROM spaces
		WHERE id = $1 AND deleted_at IS NULL
	`

	var space entity.Space
	err := r.db.QueryRow(ctx, query, id).Scan(
		&space.ID,
		&space.Name,
		&space.MaxSelectable,
		&space.CreatedAt,
		&space.UpdatedAt,
		&space.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find space by ID",
			zap.Error(err),
			zap.String("space_id", id.String()),
		)
		return nil, fmt.Errorf("find space by ID %s: %w", id.String(), err)
	}

	return &space, nil
}

func (r *spaceRepository) FindSeats(ctx context.Context, spaceID uuid.UUID) ([]entity.Seat, error) {
	query := `
		SELECT id, space_id, pos_x, pos_y, shape, size
		FROM seats
		WHERE space_id = $1
		ORDER BY pos_y, pos_x, id
	`

	rows, err := r.db.Query(ctx, query, spaceID)
	if err != nil {
		r.log.Error("Failed to find seats by space ID",
			zap.Error(err),
			zap.String("space_id", spaceID.String()),
		)
		return nil, fmt.Errorf("find seats for space %s: %w", spaceID.String(), err)
	}
	defer rows.Close()

	var seats []entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.SpaceID,
			&seat.X,
			&seat.Y,
			&seat.Shape,
			&seat.Size,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *spaceRepository) FindDecorations(ctx context.Context, spaceID uuid.UUID) ([]entity.Decoration, error) {
	query := `
		SELECT id, space_id, kind, pos_x, pos_y, width, height, image_url, text, font_size, created_at
		FROM space_decorations
		WHERE space_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, spaceID)
	if err != nil {
		r.log.Error("Failed to find decorations by space ID",
			zap.Error(err),
			zap.String("space_id", spaceID.String()),
		)
		return nil, fmt.Errorf("find decorations for space %s: %w", spaceID.String(), err)
	}
	defer rows.Close()

	var decorations []entity.Decoration
	for rows.Next() {
		var d entity.Decoration
		err := rows.Scan(
			&d.ID,
			&d.SpaceID,
			&d.Kind,
			&d.X,
			&d.Y,
			&d.Width,
			&d.Height,
			&d.ImageURL,
			&d.Text,
			&d.FontSize,
			&d.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan decoration row", zap.Error(err))
			return nil, fmt.Errorf("scan decoration row: %w", err)
		}
		decorations = append(decorations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decoration rows: %w", err)
	}

	return decorations, nil
}
