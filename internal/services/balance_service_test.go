package services

import (
	"testing"

	"gorm.io/gorm"

	"fintrack/internal/testutil"
)

func TestApplyTransaction(t *testing.T) {
	t.Run("adds_signed_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewUserID()
		card := testutil.CreateTestCardWithBalance(t, db, userID, 10000)
		r := NewBalanceReconciler()

		testutil.AssertNoError(t, r.ApplyTransaction(db, userID, card.ID, -2500))
		testutil.AssertCardBalance(t, db, card.ID, 7500)

		testutil.AssertNoError(t, r.ApplyTransaction(db, userID, card.ID, 1000))
		testutil.AssertCardBalance(t, db, card.ID, 8500)
	})

	t.Run("unknown_card", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		err := NewBalanceReconciler().ApplyTransaction(db, testutil.NewUserID(), testutil.NewUserID(), 100)
		testutil.AssertAppError(t, err, "CARD_NOT_FOUND")
	})

	t.Run("other_users_card", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		card := testutil.CreateTestCardWithBalance(t, db, testutil.NewUserID(), 500)

		err := NewBalanceReconciler().ApplyTransaction(db, testutil.NewUserID(), card.ID, 100)
		testutil.AssertAppError(t, err, "CARD_NOT_FOUND")
		testutil.AssertCardBalance(t, db, card.ID, 500)
	})

	t.Run("rolls_back_with_caller", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userID := testutil.NewUserID()
		card := testutil.CreateTestCardWithBalance(t, db, userID, 500)

		_ = db.Transaction(func(tx *gorm.DB) error {
			if err := NewBalanceReconciler().ApplyTransaction(tx, userID, card.ID, 100); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return gorm.ErrInvalidTransaction
		})
		testutil.AssertCardBalance(t, db, card.ID, 500)
	})
}
