package usecase

import (
	"context"
	"log"
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"
)

// DashboardStats is the daily roll-up shown on the operator dashboard.
//
// ConversionRate, AvgCallDuration and FallbackRate are part of the contract
// but not measured yet; they are always zero and must not be read as real
// figures.
type DashboardStats struct {
	CallsToday      int     `json:"calls_today"`
	OrdersToday     int     `json:"orders_today"`
	ConfirmedToday  int     `json:"confirmed_today"`
	RevenueToday    float64 `json:"revenue_today"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	ConversionRate  float64 `json:"conversion_rate"`
	AvgCallDuration float64 `json:"avg_call_duration"`
	FallbackRate    float64 `json:"fallback_rate"`
}

// IStatsUseCase computes the dashboard stats.
type IStatsUseCase interface {
	GetDashboardStats(ctx context.Context, restaurantID string) (DashboardStats, error)
}

type StatsUseCase struct {
	orders interfaces.IOrderRepository
	calls  interfaces.ICallLogRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(orders interfaces.IOrderRepository, calls interfaces.ICallLogRepository) *StatsUseCase {
	return &StatsUseCase{orders: orders, calls: calls}
}

// GetDashboardStats scans today's orders and call events, counting from the
// start of the current UTC day. Revenue sums full-precision totals over
// confirmed orders only; display rounding happens at the response boundary.
// Storage failures degrade to zeroed figures so the dashboard keeps
// rendering.
func (u *StatsUseCase) GetDashboardStats(ctx context.Context, restaurantID string) (DashboardStats, error) {
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	orders, err := u.orders.ListSince(ctx, restaurantID, startOfDay)
	if err != nil {
		log.Printf("[stats][usecase] order scan failed restaurant_id=%s err=%v", restaurantID, err)
		return DashboardStats{}, nil
	}

	stats := DashboardStats{OrdersToday: len(orders)}
	for _, o := range orders {
		if o.Status != entities.OrderStatusConfirmed {
			continue
		}
		stats.ConfirmedToday++
		stats.RevenueToday += o.Total
	}
	if stats.ConfirmedToday > 0 {
		stats.AvgOrderValue = stats.RevenueToday / float64(stats.ConfirmedToday)
	}

	calls, err := u.calls.CountSince(ctx, restaurantID, startOfDay)
	if err != nil {
		// Call totals are informational; keep the order figures usable.
		log.Printf("[stats][usecase] call count failed restaurant_id=%s err=%v", restaurantID, err)
	} else {
		stats.CallsToday = calls
	}

	return stats, nil
}
