package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	_ "voicehub/docs" // swag-generated swagger docs
	"voicehub/internal/adapter/http/handlers"
	"voicehub/internal/adapter/persistence/repository"
	"voicehub/internal/infrastructure/database"
	"voicehub/internal/infrastructure/pos"
	"voicehub/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the repositories, use cases and handlers and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8001")
	log.Printf("[api] voice hub listening port=%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	menuRepo := repository.NewMenuDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	callRepo := repository.NewCallLogDynamoRepository(ddb)
	faqRepo := repository.NewFAQDynamoRepository(ddb)

	defaultRestaurantID := getenvDefault("DEFAULT_RESTAURANT_ID", "demo_restaurant")
	taxRate := getenvFloat("TAX_RATE", usecase.DefaultTaxRate)
	baseETA := getenvInt("BASE_ETA_MINUTES", usecase.DefaultBaseETA)
	log.Printf("[api] config default_restaurant_id=%s tax_rate=%.5f base_eta_minutes=%d", defaultRestaurantID, taxRate, baseETA)

	menuUseCase := usecase.NewMenuUseCase(menuRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, menuRepo, taxRate, baseETA)
	callUseCase := usecase.NewCallUseCase(callRepo)
	statsUseCase := usecase.NewStatsUseCase(orderRepo, callRepo)
	faqUseCase := usecase.NewFAQUseCase(faqRepo)

	menuHandler := handlers.NewMenuHandler(menuUseCase, defaultRestaurantID)
	orderHandler := handlers.NewOrderHandler(orderUseCase, defaultRestaurantID)
	callHandler := handlers.NewCallHandler(callUseCase, defaultRestaurantID)
	dashboardHandler := handlers.NewDashboardHandler(statsUseCase, faqUseCase, defaultRestaurantID)
	posHandler := handlers.NewPOSHandler(pos.NewStubGateway())

	addHealthRoutes(router)
	addToolRoutes(router.Group("/tool"), menuHandler, orderHandler, callHandler)
	addDashboardRoutes(router.Group("/dashboard"), menuHandler, orderHandler, callHandler, dashboardHandler)
	addPOSRoutes(router.Group("/pos"), posHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
}

func addHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC().Format(time.RFC3339)})
	})
}

func getenvFloat(key string, def float64) float64 {
	raw := getenvDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("[api] invalid %s=%q, using default %v", key, raw, def)
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	raw := getenvDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[api] invalid %s=%q, using default %v", key, raw, def)
		return def
	}
	return v
}
