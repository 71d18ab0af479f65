package request

type CreateBookingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       *string `json:"email"`
	Phone       string  `json:"phone" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Service     string  `json:"service" validate:"required"`
	VehicleType *string `json:"vehicleType"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	Notes       *string `json:"notes"`
	PromoCode   *string `json:"promoCode"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
