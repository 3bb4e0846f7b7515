package interfaces

import (
	"context"

	"voicehub/internal/domain/entities"
)

// IMenuRepository abstracts DynamoDB persistence for MenuItem.
//
// The voice tools only ever read the catalog; the dashboard toggles
// availability and replaces the whole catalog after an upload.

type IMenuRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.MenuItem, error)
	SetAvailability(ctx context.Context, itemID string, available bool) (found bool, err error)
	ReplaceForRestaurant(ctx context.Context, restaurantID string, items []entities.MenuItem) error
}
