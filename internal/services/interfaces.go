package services

import (
	"context"
	"io"
	"time"

	"gorm.io/gorm"

	"fintrack/internal/aggregate"
	"fintrack/internal/intake"
	"fintrack/internal/models"
)

// CardServicer defines the contract for card-related business logic.
type CardServicer interface {
	CreateCard(ctx context.Context, ownerID, name, lastFour string, openingBalance int64) (*models.Card, error)
	ListCards(ctx context.Context, userID string) ([]models.Card, error)
	GetCardByID(ctx context.Context, userID, cardID string) (*models.Card, error)
	FirstCard(ctx context.Context, userID string) (*models.Card, error)
}

// CandidateTransaction is a transaction as submitted by a user, before
// validation. Amount is a decimal string such as "-4.99".
type CandidateTransaction struct {
	Date        string
	Description string
	Amount      string
	Category    models.Category
	CardID      string
}

// TransactionServicer defines the contract for ledger operations.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID string, candidate CandidateTransaction) (*models.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// BalanceReconciler adjusts card balances. It always runs on the caller's
// database transaction so the adjustment commits with the ledger change.
type BalanceReconciler interface {
	ApplyTransaction(tx *gorm.DB, userID, cardID string, amount int64) error
}

// AllowListServicer defines the contract for the email allow-list.
type AllowListServicer interface {
	IsAllowListed(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, email string) (*models.AllowedEmail, error)
	Remove(ctx context.Context, email string) error
	List(ctx context.Context) ([]models.AllowedEmail, error)
}

// Dashboard is the summary shown on the home screen. Money fields are cents.
type Dashboard struct {
	TotalBalance       int64                     `json:"total_balance"`
	MonthlySpending    int64                     `json:"monthly_spending"`
	Runway             float64                   `json:"runway"`
	MonthStart         time.Time                 `json:"month_start"`
	Cards              []models.Card             `json:"cards"`
	RecentTransactions []models.Transaction      `json:"recent_transactions"`
	SpendingByCategory []aggregate.CategorySpend `json:"spending_by_category"`
}

// DashboardServicer defines the contract for dashboard reads.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error)
	SpendingChart(ctx context.Context, userID string, now time.Time) ([]byte, error)
}

// ReceiptUpload is an image received from a client.
type ReceiptUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ReceiptResult is the stored image reference and the fields read from it.
// The extraction is a suggestion; nothing is saved to the ledger.
type ReceiptResult struct {
	ImageURL   string             `json:"image_url"`
	Extraction *intake.Extraction `json:"extraction"`
}

// ReceiptServicer defines the contract for receipt intake.
type ReceiptServicer interface {
	Process(ctx context.Context, userID string, upload ReceiptUpload) (*ReceiptResult, error)
	Extract(ctx context.Context, userID, imageRef string) (*intake.Extraction, error)
}

// AuditServicer records ledger and access events.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID string, changes map[string]any)
}
