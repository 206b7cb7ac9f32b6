package response

import (
	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/pricing"
)

type PackageResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Type          entity.PackageType `json:"type"`
	TargetRole    entity.MemberRole  `json:"target_role"`
	RemainingUses int                `json:"remaining_uses"`
	DailyLimit    float64            `json:"daily_limit_hours"`
}

type PackagesResponse struct {
	Packages            []PackageResponse `json:"packages"`
	PackagesUnavailable bool              `json:"packages_unavailable"`
}

type PackageDiscountResponse struct {
	PackageID      string             `json:"package_id"`
	PackageName    string             `json:"package_name"`
	PackageType    entity.PackageType `json:"package_type"`
	AppliedHours   float64            `json:"applied_hours"`
	RemainingHours float64            `json:"remaining_hours"`
	DiscountAmount float64            `json:"discount_amount"`
}

type QuoteResponse struct {
	Role                entity.MemberRole        `json:"role"`
	HourlyRate          float64                  `json:"hourly_rate"`
	People              int                      `json:"people"`
	TotalHours          float64                  `json:"total_hours"`
	BasePrice           float64                  `json:"base_price"`
	Discount            *PackageDiscountResponse `json:"discount,omitempty"`
	FinalPrice          float64                  `json:"final_price"`
	PaymentMethod       string                   `json:"payment_method"`
	CardFee             float64                  `json:"card_fee"`
	AmountDue           float64                  `json:"amount_due"`
	AmountDueDisplay    string                   `json:"amount_due_display"`
	SkipPayment         bool                     `json:"skip_payment"`
	PackagesUnavailable bool                     `json:"packages_unavailable"`
}

type PaymentSettingsResponse struct {
	StudentRate    float64 `json:"student_rate"`
	MemberRate     float64 `json:"member_rate"`
	TutorRate      float64 `json:"tutor_rate"`
	CardFeePercent float64 `json:"card_fee_percent"`
	UpdatedAt      string  `json:"updated_at"`
}

// Helper converters
func PackageToResponse(p entity.UserPackage) PackageResponse {
	return PackageResponse{
		ID:            p.ID,
		Name:          p.PackageName,
		Type:          p.PackageType,
		TargetRole:    p.TargetRole,
		RemainingUses: p.RemainingUses,
		DailyLimit:    p.PackageType.DailyLimit(),
	}
}

func DiscountToResponse(d *pricing.PackageDiscount) *PackageDiscountResponse {
	if d == nil {
		return nil
	}
	return &PackageDiscountResponse{
		PackageID:      d.PackageID,
		PackageName:    d.PackageName,
		PackageType:    d.PackageType,
		AppliedHours:   d.AppliedHours,
		RemainingHours: d.RemainingHours,
		DiscountAmount: pricing.RoundCents(d.DiscountAmount),
	}
}

func PaymentSettingsToResponse(s *entity.PaymentSettings) PaymentSettingsResponse {
	return PaymentSettingsResponse{
		StudentRate:    s.StudentRate,
		MemberRate:     s.MemberRate,
		TutorRate:      s.TutorRate,
		CardFeePercent: s.CardFeePercent,
		UpdatedAt:      s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
