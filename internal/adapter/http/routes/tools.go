package routes

import (
	"voicehub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addToolRoutes registers the endpoints the voice agent calls mid-call.
func addToolRoutes(rg *gin.RouterGroup, menuHandler *handlers.MenuHandler, orderHandler *handlers.OrderHandler, callHandler *handlers.CallHandler) {
	rg.GET("/menu_search", menuHandler.SearchMenu)
	rg.POST("/order_create_or_update", orderHandler.CreateOrUpdate)
	rg.POST("/get_eta", orderHandler.GetETA)
	rg.POST("/order_confirm", orderHandler.Confirm)
	rg.POST("/handoff_to_human", callHandler.HandoffToHuman)
}
