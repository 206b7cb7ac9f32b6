package pricing

import (
	"testing"

	"cowork-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkg(id string, typ entity.PackageType, role entity.MemberRole, uses int) entity.UserPackage {
	return entity.UserPackage{
		ID:            id,
		PackageName:   id + " pass",
		PackageType:   typ,
		TargetRole:    role,
		RemainingUses: uses,
	}
}

func TestCalculatePackageDiscount_NoPackages(t *testing.T) {
	cases := []struct {
		hours  float64
		people int
		rate   float64
	}{
		{1, 1, 5},
		{3.5, 2, 7.25},
		{8, 6, 12},
	}

	for _, tc := range cases {
		got := CalculatePackageDiscount(tc.hours, tc.people, nil, entity.RoleStudent, tc.rate)

		assert.Equal(t, tc.hours*float64(tc.people), got.TotalHours)
		assert.Equal(t, got.BasePrice, got.FinalPrice)
		assert.Equal(t, tc.hours*float64(tc.people)*tc.rate, got.BasePrice)
		assert.Nil(t, got.Discount)
		assert.False(t, got.SkipPayment)
	}
}

func TestCalculatePackageDiscount_NoApplicablePackageMatchesNoPackage(t *testing.T) {
	packages := []entity.UserPackage{
		pkg("tutor", entity.PackageFullDay, entity.RoleTutor, 3),
		pkg("spent", entity.PackageFullDay, entity.RoleStudent, 0),
	}

	got := CalculatePackageDiscount(6, 2, packages, entity.RoleStudent, 5)
	want := CalculatePackageDiscount(6, 2, nil, entity.RoleStudent, 5)

	assert.Equal(t, want, got)
}

func TestCalculatePackageDiscount_FullDayCoversSinglePerson(t *testing.T) {
	packages := []entity.UserPackage{pkg("fd", entity.PackageFullDay, entity.RoleMember, 2)}

	got := CalculatePackageDiscount(8, 1, packages, entity.RoleMember, 6)

	require.NotNil(t, got.Discount)
	assert.Equal(t, 8.0, got.Discount.AppliedHours)
	assert.Equal(t, 0.0, got.Discount.RemainingHours)
	assert.Equal(t, 0.0, got.FinalPrice)
	assert.True(t, got.SkipPayment)
}

func TestCalculatePackageDiscount_HalfDayGroupBooking(t *testing.T) {
	packages := []entity.UserPackage{pkg("hd", entity.PackageHalfDay, entity.RoleStudent, 1)}

	got := CalculatePackageDiscount(6, 3, packages, entity.RoleStudent, 5.00)

	require.NotNil(t, got.Discount)
	assert.Equal(t, 18.0, got.TotalHours)
	assert.Equal(t, 4.0, got.Discount.AppliedHours)
	assert.Equal(t, 2.0, got.Discount.RemainingHours)
	assert.Equal(t, 90.00, got.BasePrice)
	assert.Equal(t, 20.00, got.Discount.DiscountAmount)
	assert.Equal(t, 70.00, got.FinalPrice)
	assert.False(t, got.SkipPayment)
}

func TestCalculatePackageDiscount_HoursBelowLimit(t *testing.T) {
	packages := []entity.UserPackage{pkg("fd", entity.PackageFullDay, entity.RoleTutor, 1)}

	got := CalculatePackageDiscount(3, 2, packages, entity.RoleTutor, 10)

	require.NotNil(t, got.Discount)
	assert.Equal(t, 3.0, got.Discount.AppliedHours)
	assert.Equal(t, 0.0, got.Discount.RemainingHours)
	assert.Equal(t, 30.0, got.FinalPrice)
}

func TestCalculatePackageDiscount_PicksHighestLimit(t *testing.T) {
	packages := []entity.UserPackage{
		pkg("half", entity.PackageHalfDay, entity.RoleStudent, 1),
		pkg("full", entity.PackageFullDay, entity.RoleStudent, 1),
		pkg("sem", entity.PackageSemesterBundle, entity.RoleStudent, 9),
	}

	got := CalculatePackageDiscount(10, 1, packages, entity.RoleStudent, 2)

	require.NotNil(t, got.Discount)
	assert.Equal(t, "full", got.Discount.PackageID)
	assert.Equal(t, 8.0, got.Discount.AppliedHours)
	assert.Equal(t, 4.0, got.FinalPrice)
}

func TestCalculatePackageDiscount_TieBreakFirstWins(t *testing.T) {
	packages := []entity.UserPackage{
		pkg("sem", entity.PackageSemesterBundle, entity.RoleStudent, 5),
		pkg("half", entity.PackageHalfDay, entity.RoleStudent, 5),
	}

	got := CalculatePackageDiscount(4, 1, packages, entity.RoleStudent, 5)
	require.NotNil(t, got.Discount)
	assert.Equal(t, "sem", got.Discount.PackageID)

	packages[0], packages[1] = packages[1], packages[0]
	got = CalculatePackageDiscount(4, 1, packages, entity.RoleStudent, 5)
	require.NotNil(t, got.Discount)
	assert.Equal(t, "half", got.Discount.PackageID)
}

func TestCalculatePackageDiscount_DoesNotMutateInput(t *testing.T) {
	packages := []entity.UserPackage{
		pkg("half", entity.PackageHalfDay, entity.RoleMember, 1),
		pkg("full", entity.PackageFullDay, entity.RoleMember, 1),
	}
	before := append([]entity.UserPackage(nil), packages...)

	CalculatePackageDiscount(5, 2, packages, entity.RoleMember, 3)

	assert.Equal(t, before, packages)
}

func TestPackageType_DailyLimit(t *testing.T) {
	assert.Equal(t, 4.0, entity.PackageHalfDay.DailyLimit())
	assert.Equal(t, 8.0, entity.PackageFullDay.DailyLimit())
	assert.Equal(t, 4.0, entity.PackageSemesterBundle.DailyLimit())
	assert.Equal(t, 0.0, entity.PackageType("WEEKLY").DailyLimit())
}
