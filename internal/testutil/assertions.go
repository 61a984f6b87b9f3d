package testutil

import (
	"errors"
	"testing"

	apperrors "fintrack/internal/errors"

	"gorm.io/gorm"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertCardBalance reloads a card and checks its stored balance.
func AssertCardBalance(t *testing.T, db *gorm.DB, cardID string, want int64) {
	t.Helper()

	var card struct{ Balance int64 }
	if err := db.Table("cards").Select("balance").Where("id = ?", cardID).Take(&card).Error; err != nil {
		t.Fatalf("failed to reload card %s: %v", cardID, err)
	}
	if card.Balance != want {
		t.Errorf("expected card balance %d, got %d", want, card.Balance)
	}
}

// AssertRowCount checks the number of rows in table.
func AssertRowCount(t *testing.T, db *gorm.DB, table string, want int64) {
	t.Helper()

	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	if n != want {
		t.Errorf("expected %d rows in %s, got %d", want, table, n)
	}
}
