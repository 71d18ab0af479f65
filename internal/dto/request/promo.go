package request

type ValidatePromoRequest struct {
	PromoCode string `json:"promoCode" validate:"required"`
}
