// Package server assembles the HTTP router from the application's services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fintrack/internal/docs" // swagger docs
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/session"
)

// Deps holds everything the router needs to serve requests.
type Deps struct {
	Sessions     session.Provider
	Cards        services.CardServicer
	Transactions services.TransactionServicer
	AllowList    services.AllowListServicer
	Dashboard    services.DashboardServicer
	Receipts     services.ReceiptServicer

	RecentLimit     int
	MaxReceiptBytes int64
	AdminAPIKey     string
	CORSOrigin      string
	EnableSwagger   bool
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	sessionHandler := handlers.NewSessionHandler(d.Sessions)
	cardHandler := handlers.NewCardHandler(d.Cards)
	transactionHandler := handlers.NewTransactionHandler(d.Transactions, d.RecentLimit)
	dashboardHandler := handlers.NewDashboardHandler(d.Dashboard)
	receiptHandler := handlers.NewReceiptHandler(d.Receipts, d.MaxReceiptBytes)
	adminHandler := handlers.NewAdminHandler(d.AllowList, d.Cards)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(d.CORSOrigin))

	if d.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Operator routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware(d.AdminAPIKey))
	admin.GET("/allow-list", adminHandler.ListAllowList)
	admin.POST("/allow-list", adminHandler.AddAllowList)
	admin.DELETE("/allow-list/:email", adminHandler.RemoveAllowList)
	admin.POST("/cards", adminHandler.CreateCard)

	// Everything else requires an allow-listed session
	protected := v1.Group("")
	protected.Use(middleware.AccessGate(d.Sessions, d.AllowList))

	protected.GET("/session", sessionHandler.GetSession)
	protected.POST("/session/signout", sessionHandler.SignOut)

	cards := protected.Group("/cards")
	cards.GET("", cardHandler.GetCards)
	cards.GET("/:id", cardHandler.GetCardByID)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetDashboard)
	dashboard.GET("/spending.png", dashboardHandler.GetSpendingChart)

	receipts := protected.Group("/receipts")
	receipts.POST("", receiptHandler.UploadReceipt)
	receipts.POST("/extract", receiptHandler.ExtractReceipt)

	return router
}
