package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "voicehub/internal/adapter/http/dto/request"
	response "voicehub/internal/adapter/http/dto/response"
	"voicehub/internal/usecase"
	"voicehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMenuPayload = pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)

// MenuHandler serves the menu_search voice tool and the dashboard catalog
// endpoints.

type MenuHandler struct {
	usecase             usecase.IMenuUseCase
	defaultRestaurantID string
}

func NewMenuHandler(uc usecase.IMenuUseCase, defaultRestaurantID string) *MenuHandler {
	return &MenuHandler{usecase: uc, defaultRestaurantID: defaultRestaurantID}
}

// SearchMenu answers GET /tool/menu_search. An absent query lists the menu;
// an empty catalog is a valid, empty result. Both are 200s.
func (h *MenuHandler) SearchMenu(c *gin.Context) {
	restaurantID := h.restaurantIDFromQuery(c)
	query := c.Query("query")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
			return
		}
		limit = parsed
	}

	res := h.usecase.SearchMenu(c.Request.Context(), restaurantID, query, limit)
	c.JSON(http.StatusOK, response.FromMenuSearchResult(res))
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	items := h.usecase.GetMenu(c.Request.Context(), h.restaurantIDFromQuery(c))
	c.JSON(http.StatusOK, response.MenuResponse{Items: response.FromMenuItems(items)})
}

func (h *MenuHandler) ReplaceMenu(c *gin.Context) {
	var payload request.ReplaceMenuRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	restaurantID := strings.TrimSpace(payload.RestaurantID)
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	items, err := h.usecase.ReplaceCatalog(c.Request.Context(), restaurantID, payload.ToRows())
	if err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MenuResponse{Items: response.FromMenuItems(items)})
}

func (h *MenuHandler) SetAvailability(c *gin.Context) {
	itemID := c.Param("item_id")

	var payload request.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMenuPayload.HTTPStatus, errInvalidMenuPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetAvailability(c.Request.Context(), itemID, *payload.Available); err != nil {
		appErr := mapMenuError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SetAvailabilityResponse{ItemID: itemID, Available: *payload.Available})
}

func (h *MenuHandler) restaurantIDFromQuery(c *gin.Context) string {
	if v := strings.TrimSpace(c.Query("restaurant_id")); v != "" {
		return v
	}
	return h.defaultRestaurantID
}

func mapMenuError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCatalogRow):
		return pkg.NewDomainErrorSimple("INVALID_MENU_INPUT", "Invalid menu payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
