package handlers

import (
	"net/http"

	request "voicehub/internal/adapter/http/dto/request"
	response "voicehub/internal/adapter/http/dto/response"
	"voicehub/internal/usecase/interfaces"
	"voicehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPOSPayload = pkg.NewDomainErrorSimple("INVALID_POS_INPUT", "Invalid POS payload", http.StatusBadRequest)

// POSHandler serves the provider-connection stub used during dashboard
// setup.

type POSHandler struct {
	gateway interfaces.IPOSGateway
}

func NewPOSHandler(gateway interfaces.IPOSGateway) *POSHandler {
	return &POSHandler{gateway: gateway}
}

func (h *POSHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.gateway.ListProviders()})
}

func (h *POSHandler) Connect(c *gin.Context) {
	var payload request.POSConnectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPOSPayload.HTTPStatus, errInvalidPOSPayload.ToHTTPError())
		return
	}

	ok, err := h.gateway.VerifyConnection(c.Request.Context(), payload.Provider, payload.APIKey)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.POSConnectResponse{
		Connected:    ok,
		Provider:     payload.Provider,
		ProviderName: h.gateway.ProviderName(payload.Provider),
	})
}
