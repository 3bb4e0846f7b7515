package interfaces

import (
	"context"
	"time"

	"voicehub/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Contract notes:
//   - GetByID and UpdateStatus return a zero-value Order (ID == "") when no
//     row matches; callers translate that into their own not-found error.
//   - Upsert writes every field of the order EXCEPT status and created_at,
//     which are preserved when the row already exists and defaulted
//     (draft / now) when it does not. This must be a single conditional
//     write so a concurrent confirmation cannot be overwritten by a stale
//     draft update.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Upsert(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entities.Order, error)
	ListSince(ctx context.Context, restaurantID string, since time.Time) ([]entities.Order, error)
	CountByStatusSince(ctx context.Context, restaurantID string, status entities.OrderStatus, since time.Time) (int, error)
}
