package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/store"
	"backend/internal/websocket"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Campus Stock & Budget API
// @version         1.0
// @description     Stock requests, approvals and budget tracking for an institution.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	driver := os.Getenv("STORE_DRIVER")
	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "stock.db"
	}

	db, err := database.NewConnection(driver, dsn)
	if err != nil {
		log.Fatalf("Store connection failed: %v", err)
	}
	log.Println("Connected to store successfully.")

	kv := store.New(db)
	database.Seed(kv)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	runner := repository.NewExclusiveRunner()
	stockRepo := repository.NewStockRepository(kv)
	requestRepo := repository.NewRequestRepository(kv)
	notificationRepo := repository.NewNotificationRepository(kv)
	budgetRepo := repository.NewBudgetRepository(kv)
	userRepo := repository.NewUserRepository(kv)

	userService := service.NewUserService(userRepo, runner)
	budgetService := service.NewBudgetService(budgetRepo, runner)
	stockService := service.NewStockService(stockRepo, budgetRepo, runner)
	notificationService := service.NewNotificationService(notificationRepo, runner, wsHub)
	requestService := service.NewRequestService(requestRepo, stockRepo, notificationRepo, runner, wsHub)
	summaryService := service.NewSummaryService(stockRepo, requestRepo, notificationRepo, budgetRepo, runner)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(userService)
	stockHandler := handler.NewStockHandler(stockService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	requestHandler := handler.NewRequestHandler(requestService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173,http://127.0.0.1:5173"
	}
	corsConfig.AllowOrigins = strings.Split(origins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	stockHandler.RegisterRoutes(router.Group(""))
	budgetHandler.RegisterRoutes(router.Group(""))
	requestHandler.RegisterRoutes(router.Group(""))
	notificationHandler.RegisterRoutes(router.Group(""))
	summaryHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
