package usecase

import (
	"context"
	"log"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"
)

// IFAQUseCase lists the FAQ entries for a restaurant.
type IFAQUseCase interface {
	ListFAQs(ctx context.Context, restaurantID string) []entities.FAQ
}

type FAQUseCase struct {
	repo interfaces.IFAQRepository
}

var _ IFAQUseCase = (*FAQUseCase)(nil)

func NewFAQUseCase(repo interfaces.IFAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

// ListFAQs fails open: a storage error degrades to an empty list so the
// dashboard keeps rendering.
func (u *FAQUseCase) ListFAQs(ctx context.Context, restaurantID string) []entities.FAQ {
	faqs, err := u.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		log.Printf("[faq][usecase] list failed restaurant_id=%s err=%v", restaurantID, err)
		return []entities.FAQ{}
	}
	if faqs == nil {
		faqs = []entities.FAQ{}
	}
	return faqs
}
