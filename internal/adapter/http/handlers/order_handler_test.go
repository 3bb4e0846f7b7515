package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voicehub/internal/adapter/http/handlers/mocks"
	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testRestaurantID = "demo_restaurant"

func TestOrderHandler_CreateOrUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_create_or_update", h.CreateOrUpdate)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_create_or_update", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults the restaurant id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_create_or_update", h.CreateOrUpdate)

		uc.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.OrderRequest) (usecase.OrderResult, error) {
				if cmd.RestaurantID != testRestaurantID {
					t.Fatalf("expected default restaurant id, got %q", cmd.RestaurantID)
				}
				return usecase.OrderResult{OrderID: "order-1", Status: entities.OrderStatusDraft}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/tool/order_create_or_update", bytes.NewBufferString(`{"call_id":"call-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("validation errors ride a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_create_or_update", h.CreateOrUpdate)

		uc.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).Return(usecase.OrderResult{
			OrderID:          "order-1",
			Status:           entities.OrderStatusDraft,
			Subtotal:         23.98,
			Tax:              2.1287225,
			Total:            26.1087225,
			ValidationErrors: []string{"item not found: item-ghost"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_create_or_update", bytes.NewBufferString(`{"items":[{"item_id":"item-ghost"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["tax"] != 2.13 || body["total"] != 26.11 {
			t.Fatalf("expected rounded money in the body, got %s", w.Body.String())
		}
		errs, _ := body["validation_errors"].([]any)
		if len(errs) != 1 {
			t.Fatalf("expected 1 validation error in body, got %s", w.Body.String())
		}
	})

	t.Run("invalid quantity maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_create_or_update", h.CreateOrUpdate)

		uc.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).Return(usecase.OrderResult{}, usecase.ErrInvalidQuantity)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_create_or_update", bytes.NewBufferString(`{"items":[{"item_id":"item-pizza","quantity":-1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_create_or_update", h.CreateOrUpdate)

		uc.EXPECT().CreateOrUpdate(gomock.Any(), gomock.Any()).Return(usecase.OrderResult{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/tool/order_create_or_update", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetETA(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/get_eta", h.GetETA)

		ready := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)
		uc.EXPECT().EstimateETA(gomock.Any(), testRestaurantID).Return(usecase.ETAResult{
			Minutes:   30,
			ReadyTime: ready,
			Reason:    "base preparation time of 30 minutes",
		})

		req := httptest.NewRequest(http.MethodPost, "/tool/get_eta", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["eta_minutes"] != float64(30) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["ready_time_iso"] != "2026-09-01T18:30:00Z" {
			t.Fatalf("unexpected ready time: %s", w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/get_eta", h.GetETA)

		req := httptest.NewRequest(http.MethodPost, "/tool/get_eta", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Confirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_confirm", h.Confirm)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_confirm", h.Confirm)

		uc.EXPECT().Confirm(gomock.Any(), testRestaurantID, "order-404", "").Return(usecase.ConfirmResult{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_confirm", bytes.NewBufferString(`{"order_id":"order-404"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("incomplete order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_confirm", h.Confirm)

		uc.EXPECT().Confirm(gomock.Any(), testRestaurantID, "order-1", "").Return(usecase.ConfirmResult{}, usecase.ErrOrderIncomplete)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_confirm", bytes.NewBufferString(`{"order_id":"order-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with payment link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.POST("/tool/order_confirm", h.Confirm)

		uc.EXPECT().Confirm(gomock.Any(), testRestaurantID, "order-1", "payment_link").Return(usecase.ConfirmResult{
			OrderID:     "order-1",
			Total:       26.1087225,
			ETAMinutes:  32,
			PaymentLink: "https://pay.voicehub.example/checkout/order-1",
			POSProvider: "none",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/tool/order_confirm", bytes.NewBufferString(`{"order_id":"order-1","payment_mode":"payment_link"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["confirmed"] != true {
			t.Fatalf("expected confirmed=true, got %s", w.Body.String())
		}
		if body["total"] != 26.11 {
			t.Fatalf("expected rounded total, got %s", w.Body.String())
		}
		if body["pickup_eta_minutes"] != float64(32) {
			t.Fatalf("unexpected eta: %s", w.Body.String())
		}
		if body["payment_link"] != "https://pay.voicehub.example/checkout/order-1" {
			t.Fatalf("unexpected payment link: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists orders for the query restaurant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.GET("/dashboard/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any(), "other_restaurant").Return([]entities.Order{
			{ID: "order-1", Status: entities.OrderStatusConfirmed, Total: 26.1087225},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/orders?restaurant_id=other_restaurant", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		orders, _ := body["orders"].([]any)
		if len(orders) != 1 {
			t.Fatalf("expected 1 order, got %s", w.Body.String())
		}
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, testRestaurantID)

		r := gin.New()
		r.GET("/dashboard/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any(), testRestaurantID).Return(nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
