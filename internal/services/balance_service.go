package services

import (
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// balanceService keeps card balances in step with the ledger.
type balanceService struct{}

// NewBalanceReconciler creates a new BalanceReconciler.
func NewBalanceReconciler() BalanceReconciler {
	return &balanceService{}
}

// ApplyTransaction adds amount to the card balance: an expense (negative)
// lowers it and income raises it. The update is a single relative UPDATE on
// tx, so concurrent writers never lose an adjustment and a failure rolls back
// with the rest of tx.
func (s *balanceService) ApplyTransaction(tx *gorm.DB, userID, cardID string, amount int64) error {
	result := tx.Model(&models.Card{}).
		Where("id = ? AND user_id = ?", cardID, userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCardNotFound
	}
	return nil
}
