package request

type QuoteRequest struct {
	Hours         float64 `json:"hours" validate:"gt=0,lte=24"`
	People        int     `json:"people" validate:"required,min=1,max=50"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=card cash"`
}

type ApplyPackageRequest struct {
	BookingID    string  `json:"booking_id" validate:"required"`
	PackageID    string  `json:"package_id" validate:"required"`
	AppliedHours float64 `json:"applied_hours" validate:"gt=0,lte=24"`
}
