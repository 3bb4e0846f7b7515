package response

import (
	"testing"
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.1287225, 2.13},
		{26.1087225, 26.11},
		{23.98, 23.98},
		{0, 0},
		{1.005, 1.0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromOrderResult(t *testing.T) {
	res := usecase.OrderResult{
		OrderID:  "order-1",
		Status:   entities.OrderStatusDraft,
		Subtotal: 23.98,
		Tax:      2.1287225,
		Total:    26.1087225,
	}

	out := FromOrderResult(res)
	if out.OrderID != "order-1" || out.Status != "draft" {
		t.Fatalf("unexpected fields: %+v", out)
	}
	if out.Subtotal != 23.98 || out.Tax != 2.13 || out.Total != 26.11 {
		t.Fatalf("expected rounded money, got %+v", out)
	}
	if out.MissingFields == nil || out.ValidationErrors == nil {
		t.Fatalf("expected empty slices instead of nil, got %+v", out)
	}
}

func TestFromETAResult(t *testing.T) {
	ready := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)
	out := FromETAResult(usecase.ETAResult{
		Minutes:   32,
		ReadyTime: ready,
		Reason:    "base 30 minutes plus 2 for 1 recent orders",
	})
	if out.ETAMinutes != 32 {
		t.Fatalf("unexpected minutes: %+v", out)
	}
	if out.ReadyTimeISO != "2026-09-01T18:30:00Z" {
		t.Fatalf("unexpected ready time: %q", out.ReadyTimeISO)
	}
}

func TestFromConfirmResult(t *testing.T) {
	out := FromConfirmResult(usecase.ConfirmResult{
		OrderID:     "order-1",
		Total:       26.1087225,
		ETAMinutes:  30,
		PaymentLink: "https://pay.voicehub.example/checkout/order-1",
		POSProvider: "none",
	})
	if !out.Confirmed {
		t.Fatal("expected confirmed=true")
	}
	if out.Total != 26.11 {
		t.Fatalf("expected rounded total, got %v", out.Total)
	}
	if out.PickupETAMinutes != 30 || out.POSProvider != "none" {
		t.Fatalf("unexpected fields: %+v", out)
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:           "order-1",
		CallID:       "call-1",
		Fulfillment:  "pickup",
		CustomerName: "Ana",
		Phone:        "+15550100",
		Subtotal:     23.98,
		Tax:          2.1287225,
		Total:        26.1087225,
		Status:       entities.OrderStatusConfirmed,
		CreatedAt:    now,
	}

	out := FromOrder(o)
	if out.OrderID != "order-1" || out.Status != "confirmed" {
		t.Fatalf("unexpected fields: %+v", out)
	}
	if out.Tax != 2.13 || out.Total != 26.11 {
		t.Fatalf("expected rounded money, got %+v", out)
	}
	if out.Items == nil {
		t.Fatal("expected empty items slice instead of nil")
	}
	if !out.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", out.CreatedAt)
	}
}
