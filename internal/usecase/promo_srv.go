package usecase

import (
	"fmt"

	"goldentouch-booking/internal/catalog"
	"goldentouch-booking/internal/dto/response"

	"go.uber.org/zap"
)

type PromoService interface {
	ValidatePromo(code string) *response.PromoResponse
}

type promoService struct {
	log *zap.Logger
}

func NewPromoService(log *zap.Logger) PromoService {
	return &promoService{
		log: log.With(zap.String("service", "promo")),
	}
}

func (s *promoService) ValidatePromo(code string) *response.PromoResponse {
	discount, ok := catalog.ResolvePromo(code)
	if !ok {
		s.log.Info("Unknown promo code", zap.String("code", code))
		return &response.PromoResponse{
			Valid:    false,
			Discount: 0,
			Message:  "Invalid promo code",
		}
	}

	return &response.PromoResponse{
		Valid:    true,
		Discount: discount,
		Message:  fmt.Sprintf("Promo code applied! %d%% discount", discount),
	}
}
