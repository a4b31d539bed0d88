// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/atelier-gestor/atelier/internal/config"
	"github.com/atelier-gestor/atelier/internal/handlers"
	"github.com/atelier-gestor/atelier/internal/middleware"
	"github.com/atelier-gestor/atelier/internal/services"
)

// Initialize wires services and routes. rdb may be nil, the dashboard is then
// computed on every request. Background work stops with ctx.
func Initialize(ctx context.Context, db *gorm.DB, rdb *redis.Client, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var dashboardCache services.DashboardCache
	if rdb != nil {
		dashboardCache = services.NewRedisDashboardCache(rdb, time.Duration(cfg.Redis.DashboardTTL)*time.Second)
	}
	dashboardService := services.NewDashboardService(db, dashboardCache)
	clientService := services.NewClientService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db, storageService, dashboardService)

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	generalLimiter := middleware.NewGeneralLimiter()
	uploadLimiter := middleware.NewUploadLimiter()
	go generalLimiter.CleanupVisitors(ctx)
	go uploadLimiter.CleanupVisitors(ctx)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(cfg.IsDevelopment()))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Locally stored artwork
	if cfg.AWS.AccessKeyID == "" {
		r.Static(cfg.Storage.PublicPrefix, cfg.Storage.UploadDir)
	}

	clients := r.Group("/clientes")
	{
		clients.GET("", clientHandler.GetClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	products := r.Group("/produtos")
	{
		products.GET("", productHandler.GetProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PATCH("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	orders := r.Group("/pedidos")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)

		// Items
		orders.POST("/:id/itens", orderHandler.AddItem)
		orders.PATCH("/:id/itens/:produtoId", orderHandler.UpdateItem)
		orders.DELETE("/:id/itens/:produtoId", orderHandler.RemoveItem)
		orders.POST("/:id/itens/:produtoId/upload-arte", uploadLimiter.Middleware(), orderHandler.UploadArt)
	}

	r.GET("/dashboard", dashboardHandler.GetDashboard)

	return r, nil
}
