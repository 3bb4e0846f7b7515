package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "voicehub/internal/adapter/http/dto/request"
	response "voicehub/internal/adapter/http/dto/response"
	"voicehub/internal/usecase"
	"voicehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler serves the order voice tools (create-or-update, ETA,
// confirmation) and the dashboard order history.

type OrderHandler struct {
	usecase             usecase.IOrderUseCase
	defaultRestaurantID string
}

func NewOrderHandler(uc usecase.IOrderUseCase, defaultRestaurantID string) *OrderHandler {
	return &OrderHandler{usecase: uc, defaultRestaurantID: defaultRestaurantID}
}

// CreateOrUpdate answers POST /tool/order_create_or_update. Line-item
// problems come back as validation_errors inside a 200; only malformed
// payloads and storage failures produce error statuses.
func (h *OrderHandler) CreateOrUpdate(c *gin.Context) {
	var payload request.OrderCreateOrUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateOrUpdate(c.Request.Context(), payload.ToCommand(h.defaultRestaurantID))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderResult(res))
}

func (h *OrderHandler) GetETA(c *gin.Context) {
	var payload request.ETARequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	restaurantID := strings.TrimSpace(payload.RestaurantID)
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	res := h.usecase.EstimateETA(c.Request.Context(), restaurantID)
	c.JSON(http.StatusOK, response.FromETAResult(res))
}

func (h *OrderHandler) Confirm(c *gin.Context) {
	var payload request.OrderConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	restaurantID := strings.TrimSpace(payload.RestaurantID)
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	res, err := h.usecase.Confirm(c.Request.Context(), restaurantID, payload.OrderID, payload.PaymentMode)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmResult(res))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	restaurantID := strings.TrimSpace(c.Query("restaurant_id"))
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), restaurantID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": response.FromOrders(orders)})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderIncomplete):
		return pkg.NewDomainErrorSimple("ORDER_INCOMPLETE", "Order is missing customer name, phone or items", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidFulfilment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
