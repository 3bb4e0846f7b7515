package interfaces

import (
	"context"
	"time"

	"voicehub/internal/domain/entities"
)

// ICallLogRepository abstracts DynamoDB persistence for CallLogEntry.

type ICallLogRepository interface {
	Append(ctx context.Context, e entities.CallLogEntry) (entities.CallLogEntry, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.CallLogEntry, error)
	CountSince(ctx context.Context, restaurantID string, since time.Time) (int, error)
}
