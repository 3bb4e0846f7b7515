package handlers

import (
	"net/http"
	"strings"

	request "voicehub/internal/adapter/http/dto/request"
	response "voicehub/internal/adapter/http/dto/response"
	"voicehub/internal/usecase"
	"voicehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidHandoffPayload = pkg.NewDomainErrorSimple("INVALID_HANDOFF_INPUT", "Invalid handoff payload", http.StatusBadRequest)

// CallHandler serves the handoff voice tool and the dashboard call history.

type CallHandler struct {
	usecase             usecase.ICallUseCase
	defaultRestaurantID string
}

func NewCallHandler(uc usecase.ICallUseCase, defaultRestaurantID string) *CallHandler {
	return &CallHandler{usecase: uc, defaultRestaurantID: defaultRestaurantID}
}

// HandoffToHuman answers POST /tool/handoff_to_human. It never fails at the
// HTTP level once the payload binds: the caller on the line always gets a
// response, even if the event could not be recorded.
func (h *CallHandler) HandoffToHuman(c *gin.Context) {
	var payload request.HandoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHandoffPayload.HTTPStatus, errInvalidHandoffPayload.ToHTTPError())
		return
	}

	res := h.usecase.LogHandoff(c.Request.Context(), payload.ToCommand(h.defaultRestaurantID))
	c.JSON(http.StatusOK, response.FromHandoffResult(res))
}

func (h *CallHandler) ListCalls(c *gin.Context) {
	restaurantID := strings.TrimSpace(c.Query("restaurant_id"))
	if restaurantID == "" {
		restaurantID = h.defaultRestaurantID
	}

	entries, err := h.usecase.ListCalls(c.Request.Context(), restaurantID)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"calls": response.FromCallLogs(entries)})
}
