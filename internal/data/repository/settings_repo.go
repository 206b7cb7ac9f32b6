package repository

import (
	"context"
	"fmt"

	"cowork-booking/internal/data/entity"
	"cowork-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingsRepository interface {
	FindPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error)
	UpdatePaymentSettings(ctx context.Context, settings *entity.PaymentSettings) error
}

type settingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingsRepository(db database.PgxIface, log *zap.Logger) SettingsRepository {
	return &settingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "settings")),
	}
}

func (r *settingsRepository) FindPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	query := `
		SELECT id, student_rate, member_rate, tutor_rate, card_fee_percent, created_at, updated_at
		FROM payment_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var s entity.PaymentSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.StudentRate,
		&s.MemberRate,
		&s.TutorRate,
		&s.CardFeePercent,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment settings", zap.Error(err))
		return nil, fmt.Errorf("find payment settings: %w", err)
	}

	return &s, nil
}

func (r *settingsRepository) UpdatePaymentSettings(ctx context.Context, settings *entity.PaymentSettings) error {
	query := `
		UPDATE payment_settings
		SET student_rate = $2, member_rate = $3, tutor_rate = $4, card_fee_percent = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		settings.ID,
		settings.StudentRate,
		settings.MemberRate,
		settings.TutorRate,
		settings.CardFeePercent,
		settings.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update payment settings",
			zap.Error(err),
			zap.String("settings_id", settings.ID.String()),
		)
		return fmt.Errorf("update payment settings %s: %w", settings.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment settings %s not found", settings.ID.String())
	}

	return nil
}
