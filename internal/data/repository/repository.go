package repository

import (
	"cowork-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Space       SpaceRepository
	BookingSeat BookingSeatRepository
	Settings    SettingsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Space:       NewSpaceRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
		Settings:    NewSettingsRepository(db, log),
	}
}
