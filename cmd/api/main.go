package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/supabase-go"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/intake"
	"fintrack/internal/logger"
	"fintrack/internal/server"
	"fintrack/internal/services"
	"fintrack/internal/session"
	"fintrack/internal/storage"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Personal finance tracker: cards, a signed transaction ledger, a spending dashboard and receipt intake, behind an email allow-list.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider's access token.

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	var supabaseClient *supabase.Client
	if appConfig.SupabaseURL != "" && appConfig.SupabaseKey != "" {
		supabaseClient, err = supabase.NewClient(appConfig.SupabaseURL, appConfig.SupabaseKey, &supabase.ClientOptions{})
		if err != nil {
			return fmt.Errorf("failed to create supabase client: %w", err)
		}
	}

	sessions, err := newSessionProvider(ctx, appConfig, supabaseClient)
	if err != nil {
		return err
	}
	store := newObjectStore(appConfig, supabaseClient)

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService()
	cardService := services.NewCardService(db)
	transactionService := services.NewTransactionService(db, services.NewBalanceReconciler(), auditService, appConfig.DeleteMode)
	allowListService := services.NewAllowListService(db, auditService)
	dashboardService := services.NewDashboardService(db, appConfig.RecentTransactionsLimit)
	receiptService := services.NewReceiptService(store, intake.NewMockExtractor(appConfig.ReceiptExtractDelay), cardService, appConfig.MaxReceiptBytes)

	router := server.NewRouter(server.Deps{
		Sessions:        sessions,
		Cards:           cardService,
		Transactions:    transactionService,
		AllowList:       allowListService,
		Dashboard:       dashboardService,
		Receipts:        receiptService,
		RecentLimit:     appConfig.RecentTransactionsLimit,
		MaxReceiptBytes: appConfig.MaxReceiptBytes,
		AdminAPIKey:     appConfig.AdminAPIKey,
		CORSOrigin:      appConfig.CORSOrigin,
		EnableSwagger:   !appConfig.IsProduction(),
	})

	if appConfig.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY is not set; admin endpoints are disabled")
	}
	log.Infow("Starting fintrack server",
		"port", appConfig.Port,
		"session_provider", appConfig.SessionProvider,
		"object_store", appConfig.ObjectStore,
		"delete_mode", appConfig.DeleteMode,
	)
	if !appConfig.IsProduction() {
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	}
	return router.Run(":" + appConfig.Port)
}

func newSessionProvider(ctx context.Context, cfg *config.Config, client *supabase.Client) (session.Provider, error) {
	switch cfg.SessionProvider {
	case config.SessionProviderSupabase:
		return session.NewSupabaseProvider(client, cfg.SupabaseJWTSecret, cfg.JWTAudience), nil
	case config.SessionProviderFirebase:
		p, err := session.NewFirebaseProvider(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to create firebase session provider: %w", err)
		}
		return p, nil
	default:
		return session.NewJWTProvider(cfg.JWTSecret, cfg.JWTAudience), nil
	}
}

func newObjectStore(cfg *config.Config, client *supabase.Client) storage.ObjectStore {
	if cfg.ObjectStore == config.ObjectStoreSupabase {
		return storage.NewSupabaseStore(client, cfg.ReceiptsBucket)
	}
	return storage.NewMemoryStore(cfg.ReceiptsBucket)
}
