package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DeleteMode controls whether deleting a transaction reverses its effect on
// the card balance.
type DeleteMode string

const (
	// DeleteModeStrict removes the row and leaves the card balance untouched.
	DeleteModeStrict DeleteMode = "strict"
	// DeleteModeReverse removes the row and subtracts its amount from the card.
	DeleteModeReverse DeleteMode = "reverse"
)

// Session providers understood by SESSION_PROVIDER.
const (
	SessionProviderJWT      = "jwt"
	SessionProviderSupabase = "supabase"
	SessionProviderFirebase = "firebase"
)

// Object stores understood by OBJECT_STORE.
const (
	ObjectStoreMemory   = "memory"
	ObjectStoreSupabase = "supabase"
)

// Config holds application configuration
type Config struct {
	Env  string
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	SessionProvider string
	JWTSecret       string
	JWTAudience     string

	// Supabase (sessions and receipt storage)
	SupabaseURL       string
	SupabaseKey       string
	SupabaseJWTSecret string

	// Firebase
	FirebaseProjectID       string
	FirebaseCredentialsJSON string

	// Receipt intake
	ObjectStore         string
	ReceiptsBucket      string
	ReceiptExtractDelay time.Duration
	MaxReceiptBytes     int64

	// Ledger
	DeleteMode              DeleteMode
	RecentTransactionsLimit int

	// Admin API
	AdminAPIKey string
	CORSOrigin  string
}

// Load reads configuration from the environment, loading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fintrack"),
		DBPassword: getEnv("DB_PASSWORD", "fintrack"),
		DBName:     getEnv("DB_NAME", "fintrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionProvider: strings.ToLower(getEnv("SESSION_PROVIDER", SessionProviderJWT)),
		JWTSecret:       getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTAudience:     getEnv("JWT_AUDIENCE", "authenticated"),

		SupabaseURL:       getEnv("SUPABASE_URL", ""),
		SupabaseKey:       getEnv("SUPABASE_KEY", ""),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),

		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),

		ObjectStore:    strings.ToLower(getEnv("OBJECT_STORE", ObjectStoreMemory)),
		ReceiptsBucket: getEnv("RECEIPTS_BUCKET", "receipts"),

		DeleteMode: DeleteMode(strings.ToLower(getEnv("LEDGER_DELETE_MODE", string(DeleteModeStrict)))),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		CORSOrigin:  getEnv("CORS_ORIGIN", "*"),
	}

	delayStr := getEnv("RECEIPT_EXTRACT_DELAY", "1500ms")
	delay, err := time.ParseDuration(delayStr)
	if err != nil {
		log.Printf("Warning: invalid RECEIPT_EXTRACT_DELAY value '%s', falling back to 1500ms\n", delayStr)
		delay = 1500 * time.Millisecond
	}
	config.ReceiptExtractDelay = delay

	config.MaxReceiptBytes = getEnvInt64("MAX_RECEIPT_BYTES", 10<<20)
	config.RecentTransactionsLimit = int(getEnvInt64("RECENT_TRANSACTIONS_LIMIT", 10))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DeleteMode {
	case DeleteModeStrict, DeleteModeReverse:
	default:
		return fmt.Errorf("invalid LEDGER_DELETE_MODE %q (use strict or reverse)", c.DeleteMode)
	}

	switch c.SessionProvider {
	case SessionProviderJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required for the jwt session provider")
		}
	case SessionProviderSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for the supabase session provider")
		}
	case SessionProviderFirebase:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firebase session provider")
		}
	default:
		return fmt.Errorf("unknown SESSION_PROVIDER %q", c.SessionProvider)
	}

	switch c.ObjectStore {
	case ObjectStoreMemory:
	case ObjectStoreSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for the supabase object store")
		}
	default:
		return fmt.Errorf("unknown OBJECT_STORE %q", c.ObjectStore)
	}

	if c.RecentTransactionsLimit < 1 || c.RecentTransactionsLimit > 100 {
		return fmt.Errorf("RECENT_TRANSACTIONS_LIMIT must be between 1 and 100")
	}
	return nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, v, defaultValue)
		return defaultValue
	}
	return n
}
