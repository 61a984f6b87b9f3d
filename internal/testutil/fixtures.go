package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a fresh user id. Users live in the identity provider, so
// there is no row to create.
func NewUserID() string {
	return uuid.New()
}

// CreateTestCard creates a card with zero balance.
func CreateTestCard(t *testing.T, db *gorm.DB, userID string) *models.Card {
	t.Helper()
	return CreateTestCardWithBalance(t, db, userID, 0)
}

// CreateTestCardWithBalance creates a card with the given balance (in cents).
func CreateTestCardWithBalance(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Card {
	t.Helper()

	n := nextID()
	card := &models.Card{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Card %d", n),
		Balance:  balance,
		LastFour: fmt.Sprintf("%04d", n%10000),
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestTransaction inserts a transaction row directly, without touching
// the card balance.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, cardID string, amount int64, category models.Category, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		CardID:      cardID,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Category:    category,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestAllowedEmail adds email to the allow-list.
func CreateTestAllowedEmail(t *testing.T, db *gorm.DB, email string) *models.AllowedEmail {
	t.Helper()

	entry := &models.AllowedEmail{Email: email}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create allow-list entry: %v", err)
	}
	return entry
}
