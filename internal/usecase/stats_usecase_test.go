package usecase

import (
	"context"
	"errors"
	"testing"

	"voicehub/internal/domain/entities"
	mock_interfaces "voicehub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatsUseCase_GetDashboardStats(t *testing.T) {
	t.Run("sums revenue over confirmed orders only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		calls := mock_interfaces.NewMockICallLogRepository(ctrl)
		uc := NewStatsUseCase(orders, calls)

		orders.EXPECT().ListSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return([]entities.Order{
			{ID: "order-1", Status: entities.OrderStatusConfirmed, Total: 26.1087225},
			{ID: "order-2", Status: entities.OrderStatusDraft, Total: 99.99},
			{ID: "order-3", Status: entities.OrderStatusConfirmed, Total: 10.00},
			{ID: "order-4", Status: entities.OrderStatusCancelled, Total: 50.00},
		}, nil)
		calls.EXPECT().CountSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return(7, nil)

		stats, err := uc.GetDashboardStats(context.Background(), "demo_restaurant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.OrdersToday != 4 {
			t.Fatalf("expected 4 orders today, got %d", stats.OrdersToday)
		}
		if stats.ConfirmedToday != 2 {
			t.Fatalf("expected 2 confirmed, got %d", stats.ConfirmedToday)
		}
		if !almostEqual(stats.RevenueToday, 36.1087225) {
			t.Fatalf("expected revenue 36.1087225, got %v", stats.RevenueToday)
		}
		if !almostEqual(stats.AvgOrderValue, 36.1087225/2) {
			t.Fatalf("expected avg %v, got %v", 36.1087225/2, stats.AvgOrderValue)
		}
		if stats.CallsToday != 7 {
			t.Fatalf("expected 7 calls today, got %d", stats.CallsToday)
		}
	})

	t.Run("no confirmed orders leaves average at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		calls := mock_interfaces.NewMockICallLogRepository(ctrl)
		uc := NewStatsUseCase(orders, calls)

		orders.EXPECT().ListSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return([]entities.Order{
			{ID: "order-1", Status: entities.OrderStatusDraft, Total: 12.00},
		}, nil)
		calls.EXPECT().CountSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return(0, nil)

		stats, err := uc.GetDashboardStats(context.Background(), "demo_restaurant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.AvgOrderValue != 0 || stats.RevenueToday != 0 {
			t.Fatalf("expected zero revenue figures, got %+v", stats)
		}
	})

	t.Run("order scan failure degrades to zeroed stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		calls := mock_interfaces.NewMockICallLogRepository(ctrl)
		uc := NewStatsUseCase(orders, calls)

		orders.EXPECT().ListSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return(nil, errors.New("dynamo down"))

		stats, err := uc.GetDashboardStats(context.Background(), "demo_restaurant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats != (DashboardStats{}) {
			t.Fatalf("expected zeroed stats, got %+v", stats)
		}
	})

	t.Run("call count failure keeps order figures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		calls := mock_interfaces.NewMockICallLogRepository(ctrl)
		uc := NewStatsUseCase(orders, calls)

		orders.EXPECT().ListSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return([]entities.Order{
			{ID: "order-1", Status: entities.OrderStatusConfirmed, Total: 20.00},
		}, nil)
		calls.EXPECT().CountSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return(0, errors.New("dynamo down"))

		stats, err := uc.GetDashboardStats(context.Background(), "demo_restaurant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.CallsToday != 0 {
			t.Fatalf("expected zero calls on failure, got %d", stats.CallsToday)
		}
		if stats.ConfirmedToday != 1 || !almostEqual(stats.RevenueToday, 20.00) {
			t.Fatalf("expected order figures kept, got %+v", stats)
		}
	})

	t.Run("unmeasured rates stay zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		calls := mock_interfaces.NewMockICallLogRepository(ctrl)
		uc := NewStatsUseCase(orders, calls)

		orders.EXPECT().ListSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return(nil, nil)
		calls.EXPECT().CountSince(gomock.Any(), "demo_restaurant", gomock.Any()).Return(3, nil)

		stats, err := uc.GetDashboardStats(context.Background(), "demo_restaurant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.ConversionRate != 0 || stats.AvgCallDuration != 0 || stats.FallbackRate != 0 {
			t.Fatalf("expected placeholder rates to stay zero, got %+v", stats)
		}
	})
}
