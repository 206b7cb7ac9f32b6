package entity

// PaymentSettings holds the hourly rate per member role and the card
// surcharge in percent. There is a single active row.
type PaymentSettings struct {
	BaseNoDelete
	StudentRate    float64 `db:"student_rate"`
	MemberRate     float64 `db:"member_rate"`
	TutorRate      float64 `db:"tutor_rate"`
	CardFeePercent float64 `db:"card_fee_percent"`
}

// RateFor returns the hourly rate charged to role. Roles without a rate of
// their own pay the member rate.
func (s *PaymentSettings) RateFor(role MemberRole) float64 {
	switch role {
	case RoleStudent:
		return s.StudentRate
	case RoleTutor:
		return s.TutorRate
	default:
		return s.MemberRate
	}
}
