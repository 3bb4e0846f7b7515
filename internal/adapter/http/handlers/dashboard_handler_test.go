package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voicehub/internal/adapter/http/handlers/mocks"
	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rounds money at the boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIStatsUseCase(ctrl)
		faqs := mocks.NewMockIFAQUseCase(ctrl)
		h := NewDashboardHandler(stats, faqs, testRestaurantID)

		r := gin.New()
		r.GET("/dashboard/stats", h.GetStats)

		stats.EXPECT().GetDashboardStats(gomock.Any(), testRestaurantID).Return(usecase.DashboardStats{
			CallsToday:     7,
			OrdersToday:    4,
			ConfirmedToday: 2,
			RevenueToday:   36.1087225,
			AvgOrderValue:  18.05436125,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["revenue_today"] != 36.11 || body["avg_order_value"] != 18.05 {
			t.Fatalf("expected rounded money, got %s", w.Body.String())
		}
		if body["calls_today"] != float64(7) {
			t.Fatalf("unexpected calls_today: %s", w.Body.String())
		}
	})

	t.Run("scan failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIStatsUseCase(ctrl)
		faqs := mocks.NewMockIFAQUseCase(ctrl)
		h := NewDashboardHandler(stats, faqs, testRestaurantID)

		r := gin.New()
		r.GET("/dashboard/stats", h.GetStats)

		stats.EXPECT().GetDashboardStats(gomock.Any(), testRestaurantID).Return(usecase.DashboardStats{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_ListFAQs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists faq entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIStatsUseCase(ctrl)
		faqs := mocks.NewMockIFAQUseCase(ctrl)
		h := NewDashboardHandler(stats, faqs, testRestaurantID)

		r := gin.New()
		r.GET("/dashboard/faqs", h.ListFAQs)

		faqs.EXPECT().ListFAQs(gomock.Any(), testRestaurantID).Return([]entities.FAQ{
			{ID: "faq-1", Question: "Do you deliver?", Answer: "Yes, within 3 miles."},
		})

		req := httptest.NewRequest(http.MethodGet, "/dashboard/faqs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		list, _ := body["faqs"].([]any)
		if len(list) != 1 {
			t.Fatalf("expected 1 faq, got %s", w.Body.String())
		}
	})

	t.Run("empty list is a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stats := mocks.NewMockIStatsUseCase(ctrl)
		faqs := mocks.NewMockIFAQUseCase(ctrl)
		h := NewDashboardHandler(stats, faqs, testRestaurantID)

		r := gin.New()
		r.GET("/dashboard/faqs", h.ListFAQs)

		faqs.EXPECT().ListFAQs(gomock.Any(), testRestaurantID).Return([]entities.FAQ{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard/faqs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
