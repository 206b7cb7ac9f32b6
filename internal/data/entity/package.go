package entity

type PackageType string

const (
	PackageHalfDay        PackageType = "HALF_DAY"
	PackageFullDay        PackageType = "FULL_DAY"
	PackageSemesterBundle PackageType = "SEMESTER_BUNDLE"
)

// DailyLimit returns the hours of credit a package type covers per day.
// Unknown types cover nothing.
func (t PackageType) DailyLimit() float64 {
	switch t {
	case PackageHalfDay:
		return 4
	case PackageFullDay:
		return 8
	case PackageSemesterBundle:
		return 4
	default:
		return 0
	}
}

// UserPackage is a prepaid bundle owned by a user, as returned by the
// booking backend.
type UserPackage struct {
	ID            string      `json:"id"`
	PackageName   string      `json:"packageName"`
	PackageType   PackageType `json:"packageType"`
	TargetRole    MemberRole  `json:"targetRole"`
	RemainingUses int         `json:"remainingUses"`
}
