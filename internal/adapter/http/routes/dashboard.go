package routes

import (
	"voicehub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addDashboardRoutes registers the operator dashboard reads and the catalog
// management writes.
func addDashboardRoutes(rg *gin.RouterGroup, menuHandler *handlers.MenuHandler, orderHandler *handlers.OrderHandler, callHandler *handlers.CallHandler, dashboardHandler *handlers.DashboardHandler) {
	rg.GET("/menu", menuHandler.GetMenu)
	rg.PUT("/menu", menuHandler.ReplaceMenu)
	rg.PATCH("/menu/:item_id/availability", menuHandler.SetAvailability)
	rg.GET("/orders", orderHandler.ListOrders)
	rg.GET("/calls", callHandler.ListCalls)
	rg.GET("/faqs", dashboardHandler.ListFAQs)
	rg.GET("/stats", dashboardHandler.GetStats)
}

// addPOSRoutes registers the provider-connection stub used during setup.
func addPOSRoutes(rg *gin.RouterGroup, posHandler *handlers.POSHandler) {
	rg.GET("/providers", posHandler.ListProviders)
	rg.POST("/connect", posHandler.Connect)
}
