package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/data/repository"
	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/dto/response"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultSettingsTTL = 5 * time.Minute
	settingsFlightKey  = "payment_settings"
)

type SettingsService interface {
	GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error)
	GetPaymentSettingsResponse(ctx context.Context) (*response.PaymentSettingsResponse, error)
	UpdatePaymentSettings(ctx context.Context, req *request.UpdatePaymentSettingsRequest) (*response.PaymentSettingsResponse, error)
	Invalidate()
}

// cachedSettings is the last fetched value and when it was fetched.
type cachedSettings struct {
	value     *entity.PaymentSettings
	fetchedAt time.Time
}

type settingsService struct {
	repo repository.SettingsRepository
	ttl  time.Duration
	now  func() time.Time
	log  *zap.Logger

	flight singleflight.Group

	mu    sync.Mutex
	cache *cachedSettings
	// generation is bumped by Invalidate; a refresh started under an older
	// generation is returned to its callers but not cached.
	generation uint64
}

func NewSettingsService(repo repository.SettingsRepository, ttl time.Duration, log *zap.Logger) SettingsService {
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	return &settingsService{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
		log:  log.With(zap.String("service", "settings")),
	}
}

// GetPaymentSettings serves the cached settings while they are younger than
// the TTL. Concurrent refreshes share one repository call, made without
// holding the cache lock. When a refresh fails and an older value exists,
// the older value is served.
func (s *settingsService) GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	s.mu.Lock()
	cache := s.cache
	s.mu.Unlock()

	if cache != nil && s.now().Sub(cache.fetchedAt) < s.ttl {
		return cache.value, nil
	}

	value, err, _ := s.flight.Do(settingsFlightKey, func() (any, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		s.mu.Lock()
		stale := s.cache
		s.mu.Unlock()

		if stale != nil {
			s.log.Warn("Serving stale payment settings",
				zap.Error(err),
				zap.Time("fetched_at", stale.fetchedAt),
			)
			return stale.value, nil
		}
		return nil, fmt.Errorf("get payment settings: %w", err)
	}

	return value.(*entity.PaymentSettings), nil
}

func (s *settingsService) refresh(ctx context.Context) (*entity.PaymentSettings, error) {
	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	settings, err := s.repo.FindPaymentSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("payment settings not found")
	}

	s.mu.Lock()
	if s.generation == generation {
		s.cache = &cachedSettings{value: settings, fetchedAt: s.now()}
	}
	s.mu.Unlock()

	s.log.Debug("Payment settings refreshed")
	return settings, nil
}

func (s *settingsService) GetPaymentSettingsResponse(ctx context.Context) (*response.PaymentSettingsResponse, error) {
	settings, err := s.GetPaymentSettings(ctx)
	if err != nil {
		return nil, err
	}

	resp := response.PaymentSettingsToResponse(settings)
	return &resp, nil
}

func (s *settingsService) UpdatePaymentSettings(ctx context.Context, req *request.UpdatePaymentSettingsRequest) (*response.PaymentSettingsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update payment settings validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	current, err := s.repo.FindPaymentSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payment settings: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("payment settings not found")
	}

	updated := *current
	updated.StudentRate = req.StudentRate
	updated.MemberRate = req.MemberRate
	updated.TutorRate = req.TutorRate
	updated.CardFeePercent = req.CardFeePercent
	updated.UpdatedAt = s.now()

	if err := s.repo.UpdatePaymentSettings(ctx, &updated); err != nil {
		s.log.Error("Failed to update payment settings", zap.Error(err))
		return nil, fmt.Errorf("update payment settings: %w", err)
	}

	s.Invalidate()

	s.log.Info("Payment settings updated",
		zap.Float64("student_rate", updated.StudentRate),
		zap.Float64("member_rate", updated.MemberRate),
		zap.Float64("tutor_rate", updated.TutorRate),
		zap.Float64("card_fee_percent", updated.CardFeePercent),
	)

	resp := response.PaymentSettingsToResponse(&updated)
	return &resp, nil
}

func (s *settingsService) Invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.generation++
	s.mu.Unlock()

	s.flight.Forget(settingsFlightKey)
}
