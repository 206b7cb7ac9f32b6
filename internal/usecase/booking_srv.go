package usecase

import (
	"context"
	"fmt"

	"cowork-booking/internal/data/backend"
	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/dto/response"
	"cowork-booking/internal/pricing"
	"cowork-booking/pkg/utils"

	"go.uber.org/zap"
)

const PaymentMethodCard = "card"

type BookingService interface {
	ListPackages(ctx context.Context, userID string, role entity.MemberRole) (*response.PackagesResponse, error)
	Quote(ctx context.Context, userID string, role entity.MemberRole, req *request.QuoteRequest) (*response.QuoteResponse, error)
	ApplyPackage(ctx context.Context, userID string, req *request.ApplyPackageRequest) error
}

type bookingService struct {
	packages backend.PackageClient
	settings SettingsService
	log      *zap.Logger
}

func NewBookingService(packages backend.PackageClient, settings SettingsService, log *zap.Logger) BookingService {
	return &bookingService{
		packages: packages,
		settings: settings,
		log:      log.With(zap.String("service", "booking")),
	}
}

// userPackages loads the user's packages. A failed fetch is not an error:
// the caller continues at full price and is told packages were unavailable.
func (s *bookingService) userPackages(ctx context.Context, userID string, role entity.MemberRole) ([]entity.UserPackage, bool) {
	packages, err := s.packages.FetchUserPackages(ctx, userID, role)
	if err != nil {
		s.log.Warn("User packages unavailable, continuing without discount",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("role", string(role)),
		)
		return nil, false
	}
	return packages, true
}

func (s *bookingService) ListPackages(ctx context.Context, userID string, role entity.MemberRole) (*response.PackagesResponse, error) {
	packages, ok := s.userPackages(ctx, userID, role)

	resp := &response.PackagesResponse{
		Packages:            []response.PackageResponse{},
		PackagesUnavailable: !ok,
	}
	for _, p := range pricing.ApplicablePackages(packages, role) {
		resp.Packages = append(resp.Packages, response.PackageToResponse(p))
	}

	return resp, nil
}

func (s *bookingService) Quote(ctx context.Context, userID string, role entity.MemberRole, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	settings, err := s.settings.GetPaymentSettings(ctx)
	if err != nil {
		s.log.Error("Failed to load payment settings", zap.Error(err))
		return nil, fmt.Errorf("quote: %w", err)
	}

	rate := settings.RateFor(role)
	packages, ok := s.userPackages(ctx, userID, role)

	breakdown := pricing.CalculatePackageDiscount(req.Hours, req.People, packages, role, rate)

	finalPrice := pricing.RoundCents(breakdown.FinalPrice)
	var cardFee float64
	if req.PaymentMethod == PaymentMethodCard && !breakdown.SkipPayment {
		cardFee = pricing.CalculateCreditCardFee(finalPrice, settings.CardFeePercent)
	}
	amountDue := pricing.RoundCents(finalPrice + cardFee)

	s.log.Info("Booking quoted",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
		zap.Float64("hours", req.Hours),
		zap.Int("people", req.People),
		zap.Float64("base_price", breakdown.BasePrice),
		zap.Float64("final_price", finalPrice),
		zap.Bool("discounted", breakdown.Discount != nil),
		zap.Bool("skip_payment", breakdown.SkipPayment),
	)

	return &response.QuoteResponse{
		Role:                role,
		HourlyRate:          rate,
		People:              req.People,
		TotalHours:          breakdown.TotalHours,
		BasePrice:           pricing.RoundCents(breakdown.BasePrice),
		Discount:            response.DiscountToResponse(breakdown.Discount),
		FinalPrice:          finalPrice,
		PaymentMethod:       req.PaymentMethod,
		CardFee:             cardFee,
		AmountDue:           amountDue,
		AmountDueDisplay:    pricing.FormatAmount(amountDue),
		SkipPayment:         breakdown.SkipPayment,
		PackagesUnavailable: !ok,
	}, nil
}

func (s *bookingService) ApplyPackage(ctx context.Context, userID string, req *request.ApplyPackageRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Apply package validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	err := s.packages.ApplyPackage(ctx, backend.ApplyPackageRequest{
		BookingID:    req.BookingID,
		PackageID:    req.PackageID,
		AppliedHours: req.AppliedHours,
	})
	if err != nil {
		s.log.Error("Failed to apply package",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("booking_id", req.BookingID),
			zap.String("package_id", req.PackageID),
		)
		return fmt.Errorf("booking %s: %w", req.BookingID, err)
	}

	return nil
}
