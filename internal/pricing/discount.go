// Package pricing turns booked hours into a price, offsetting one person's
// hours with the best prepaid package the user owns.
package pricing

import (
	"math"

	"cowork-booking/internal/data/entity"
)

// PackageDiscount describes the package applied to a booking.
type PackageDiscount struct {
	PackageID      string
	PackageName    string
	PackageType    entity.PackageType
	DailyLimit     float64
	AppliedHours   float64
	RemainingHours float64 // hours of the package holder left to pay
	DiscountAmount float64
}

// Breakdown is the priced result of a booking. Discount is nil when no
// package applies.
type Breakdown struct {
	TotalHours  float64
	BasePrice   float64
	Discount    *PackageDiscount
	FinalPrice  float64
	SkipPayment bool
}

// ApplicablePackages returns, in input order, the packages targeted at role
// that still have uses left.
func ApplicablePackages(packages []entity.UserPackage, role entity.MemberRole) []entity.UserPackage {
	var out []entity.UserPackage
	for _, p := range packages {
		if p.TargetRole == role && p.RemainingUses > 0 {
			out = append(out, p)
		}
	}
	return out
}

// BestPackage picks the package with the highest daily limit. On a tie the
// first one wins.
func BestPackage(packages []entity.UserPackage) (entity.UserPackage, bool) {
	if len(packages) == 0 {
		return entity.UserPackage{}, false
	}
	best := packages[0]
	for _, p := range packages[1:] {
		if p.PackageType.DailyLimit() > best.PackageType.DailyLimit() {
			best = p
		}
	}
	return best, true
}

// CalculatePackageDiscount prices individualHours for each of totalPeople at
// rate. A package only covers the hours of a single person; everybody else
// pays in full. packages is never modified.
func CalculatePackageDiscount(
	individualHours float64,
	totalPeople int,
	packages []entity.UserPackage,
	role entity.MemberRole,
	rate float64,
) Breakdown {
	totalHours := individualHours * float64(totalPeople)
	basePrice := totalHours * rate

	best, ok := BestPackage(ApplicablePackages(packages, role))
	if !ok {
		return Breakdown{
			TotalHours: totalHours,
			BasePrice:  basePrice,
			FinalPrice: basePrice,
		}
	}

	limit := best.PackageType.DailyLimit()
	appliedHours := math.Min(individualHours, limit)
	remainingHours := math.Max(0, individualHours-appliedHours)

	finalPrice := remainingHours*rate + individualHours*rate*float64(totalPeople-1)

	return Breakdown{
		TotalHours: totalHours,
		BasePrice:  basePrice,
		Discount: &PackageDiscount{
			PackageID:      best.ID,
			PackageName:    best.PackageName,
			PackageType:    best.PackageType,
			DailyLimit:     limit,
			AppliedHours:   appliedHours,
			RemainingHours: remainingHours,
			DiscountAmount: appliedHours * rate,
		},
		FinalPrice:  finalPrice,
		SkipPayment: finalPrice == 0,
	}
}
