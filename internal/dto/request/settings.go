package request

type UpdatePaymentSettingsRequest struct {
	StudentRate    float64 `json:"student_rate" validate:"gte=0"`
	MemberRate     float64 `json:"member_rate" validate:"gte=0"`
	TutorRate      float64 `json:"tutor_rate" validate:"gte=0"`
	CardFeePercent float64 `json:"card_fee_percent" validate:"gte=0,lte=100"`
}
