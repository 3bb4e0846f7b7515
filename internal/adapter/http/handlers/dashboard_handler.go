package handlers

import (
	"net/http"
	"strings"

	response "voicehub/internal/adapter/http/dto/response"
	"voicehub/internal/usecase"
	"voicehub/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the stats roll-up and the FAQ list.

type DashboardHandler struct {
	stats               usecase.IStatsUseCase
	faqs                usecase.IFAQUseCase
	defaultRestaurantID string
}

func NewDashboardHandler(stats usecase.IStatsUseCase, faqs usecase.IFAQUseCase, defaultRestaurantID string) *DashboardHandler {
	return &DashboardHandler{stats: stats, faqs: faqs, defaultRestaurantID: defaultRestaurantID}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	restaurantID := strings.TrimSpace(c.Query("restaurant_id"))
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	stats, err := h.stats.GetDashboardStats(c.Request.Context(), restaurantID)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

func (h *DashboardHandler) ListFAQs(c *gin.Context) {
	restaurantID := strings.TrimSpace(c.Query("restaurant_id"))
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	faqs := h.faqs.ListFAQs(c.Request.Context(), restaurantID)
	c.JSON(http.StatusOK, gin.H{"faqs": response.FromFAQs(faqs)})
}
