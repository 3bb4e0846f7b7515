package interfaces

import (
	"context"

	"voicehub/internal/domain/entities"
)

// IFAQRepository abstracts DynamoDB persistence for FAQ.
type IFAQRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.FAQ, error)
}
