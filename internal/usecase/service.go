package usecase

import (
	"cowork-booking/internal/data/backend"
	"cowork-booking/internal/data/repository"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	SeatMap  SeatMapService
	Booking  BookingService
	Settings SettingsService
}

func NewService(repo *repository.Repository, packages backend.PackageClient, config *utils.Config, log *zap.Logger) *Service {
	settings := NewSettingsService(repo.Settings, config.Pricing.SettingsCacheTTL, log)

	return &Service{
		SeatMap:  NewSeatMapService(repo, log),
		Booking:  NewBookingService(packages, settings, log),
		Settings: settings,
	}
}
