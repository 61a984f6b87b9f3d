package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/money"
	"fintrack/internal/pagination"
	"fintrack/internal/uuid"
)

// MaxDescriptionLength bounds a transaction description, in characters.
const MaxDescriptionLength = 500

// transactionService handles ledger business logic.
type transactionService struct {
	db         *gorm.DB
	reconciler BalanceReconciler
	audit      AuditServicer
	deleteMode config.DeleteMode
}

// NewTransactionService creates a new TransactionServicer. deleteMode picks
// whether deletes reverse the card balance; anything but DeleteModeReverse
// leaves it untouched.
func NewTransactionService(db *gorm.DB, reconciler BalanceReconciler, audit AuditServicer, deleteMode config.DeleteMode) TransactionServicer {
	return &transactionService{
		db:         db,
		reconciler: reconciler,
		audit:      audit,
		deleteMode: deleteMode,
	}
}

// CreateTransaction validates a candidate, records it and applies its amount
// to the card balance. Both writes commit together or not at all.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, candidate CandidateTransaction) (*models.Transaction, error) {
	transaction, err := validateCandidate(candidate)
	if err != nil {
		return nil, err
	}
	transaction.UserID = userID

	if !uuid.IsValid(transaction.CardID) {
		return nil, apperrors.ErrCardNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card models.Card
		if err := tx.Select("id", "user_id").Where("id = ?", transaction.CardID).Take(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCardNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if card.UserID != userID {
			return apperrors.WithMessage(apperrors.ErrForbidden, "card does not belong to you")
		}

		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return s.reconciler.ApplyTransaction(tx, userID, card.ID, transaction.Amount)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Log(ctx, userID, "create", "transaction", transaction.ID, map[string]any{
		"card_id": transaction.CardID,
		"amount":  transaction.Amount,
	})
	return transaction, nil
}

// validateCandidate checks the required fields and converts them to a
// transaction row.
func validateCandidate(c CandidateTransaction) (*models.Transaction, error) {
	if strings.TrimSpace(c.Date) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	date, err := ParseLedgerDate(c.Date)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD or RFC3339")
	}

	description := strings.TrimSpace(c.Description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 500 characters")
	}

	amount, err := money.Parse(c.Amount)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}

	if c.Category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if !c.Category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}

	cardID := strings.TrimSpace(c.CardID)
	if cardID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card_id is required")
	}

	return &models.Transaction{
		CardID:      cardID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    c.Category,
	}, nil
}

// ParseLedgerDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the
// calendar date as UTC midnight. A timestamp keeps the day of its own offset.
func ParseLedgerDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	if !uuid.IsValid(transactionID) {
		return nil, apperrors.ErrTransactionNotFound
	}

	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ListTransactions returns the caller's most recent transactions, newest
// date first.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	req := pagination.LimitRequest{Limit: limit}
	req.Defaults(pagination.DefaultLimit)
	return recentTransactions(s.db.WithContext(ctx), userID, req.Limit)
}

func recentTransactions(db *gorm.DB, userID string, limit int) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id DESC").
		Scopes(pagination.Limit(limit)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction owned by userID. In reverse mode
// the amount is taken back off the card in the same database transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if !uuid.IsValid(transactionID) {
		return apperrors.ErrTransactionNotFound
	}

	var deleted models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", transactionID, userID).Take(&deleted).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTransactionNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(&deleted).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if s.deleteMode == config.DeleteModeReverse {
			return s.reconciler.ApplyTransaction(tx, userID, deleted.CardID, -deleted.Amount)
		}
		return nil
	})
	if err != nil {
		return err
	}

	reversed := s.deleteMode == config.DeleteModeReverse
	if !reversed {
		logger.Get().Warnw("transaction deleted; card balance left unchanged",
			"user_id", userID,
			"transaction_id", deleted.ID,
			"card_id", deleted.CardID,
			"amount", deleted.Amount,
		)
	}
	s.audit.Log(ctx, userID, "delete", "transaction", deleted.ID, map[string]any{
		"card_id":  deleted.CardID,
		"amount":   deleted.Amount,
		"reversed": reversed,
	})
	return nil
}
