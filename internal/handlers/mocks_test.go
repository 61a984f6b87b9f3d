package handlers

import (
	"context"
	"time"

	"fintrack/internal/intake"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/session"
)

// --- mock card service ---

type mockCardService struct {
	createCardFn  func(ownerID, name, lastFour string, openingBalance int64) (*models.Card, error)
	listCardsFn   func(userID string) ([]models.Card, error)
	getCardByIDFn func(userID, cardID string) (*models.Card, error)
	firstCardFn   func(userID string) (*models.Card, error)
}

func (m *mockCardService) CreateCard(_ context.Context, ownerID, name, lastFour string, openingBalance int64) (*models.Card, error) {
	if m.createCardFn != nil {
		return m.createCardFn(ownerID, name, lastFour, openingBalance)
	}
	return &models.Card{}, nil
}

func (m *mockCardService) ListCards(_ context.Context, userID string) ([]models.Card, error) {
	if m.listCardsFn != nil {
		return m.listCardsFn(userID)
	}
	return []models.Card{}, nil
}

func (m *mockCardService) GetCardByID(_ context.Context, userID, cardID string) (*models.Card, error) {
	if m.getCardByIDFn != nil {
		return m.getCardByIDFn(userID, cardID)
	}
	return &models.Card{}, nil
}

func (m *mockCardService) FirstCard(_ context.Context, userID string) (*models.Card, error) {
	if m.firstCardFn != nil {
		return m.firstCardFn(userID)
	}
	return nil, nil
}

var _ services.CardServicer = (*mockCardService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(userID string, candidate services.CandidateTransaction) (*models.Transaction, error)
	getTransactionByIDFn func(userID, transactionID string) (*models.Transaction, error)
	listTransactionsFn   func(userID string, limit int) ([]models.Transaction, error)
	deleteTransactionFn  func(userID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(_ context.Context, userID string, candidate services.CandidateTransaction) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, candidate)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionByID(_ context.Context, userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(_ context.Context, userID string, limit int) ([]models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(userID, limit)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(_ context.Context, userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock dashboard service ---

type mockDashboardService struct {
	getDashboardFn  func(userID string, now time.Time) (*services.Dashboard, error)
	spendingChartFn func(userID string, now time.Time) ([]byte, error)
}

func (m *mockDashboardService) GetDashboard(_ context.Context, userID string, now time.Time) (*services.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(userID, now)
	}
	return &services.Dashboard{}, nil
}

func (m *mockDashboardService) SpendingChart(_ context.Context, userID string, now time.Time) ([]byte, error) {
	if m.spendingChartFn != nil {
		return m.spendingChartFn(userID, now)
	}
	return []byte{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

// --- mock receipt service ---

type mockReceiptService struct {
	processFn func(userID string, upload services.ReceiptUpload) (*services.ReceiptResult, error)
	extractFn func(userID, imageRef string) (*intake.Extraction, error)
}

func (m *mockReceiptService) Process(_ context.Context, userID string, upload services.ReceiptUpload) (*services.ReceiptResult, error) {
	if m.processFn != nil {
		return m.processFn(userID, upload)
	}
	return &services.ReceiptResult{Extraction: &intake.Extraction{}}, nil
}

func (m *mockReceiptService) Extract(_ context.Context, userID, imageRef string) (*intake.Extraction, error) {
	if m.extractFn != nil {
		return m.extractFn(userID, imageRef)
	}
	return &intake.Extraction{}, nil
}

var _ services.ReceiptServicer = (*mockReceiptService)(nil)

// --- mock allow-list service ---

type mockAllowListService struct {
	isAllowListedFn func(email string) (bool, error)
	addFn           func(email string) (*models.AllowedEmail, error)
	removeFn        func(email string) error
	listFn          func() ([]models.AllowedEmail, error)
}

func (m *mockAllowListService) IsAllowListed(_ context.Context, email string) (bool, error) {
	if m.isAllowListedFn != nil {
		return m.isAllowListedFn(email)
	}
	return true, nil
}

func (m *mockAllowListService) Add(_ context.Context, email string) (*models.AllowedEmail, error) {
	if m.addFn != nil {
		return m.addFn(email)
	}
	return &models.AllowedEmail{Email: email}, nil
}

func (m *mockAllowListService) Remove(_ context.Context, email string) error {
	if m.removeFn != nil {
		return m.removeFn(email)
	}
	return nil
}

func (m *mockAllowListService) List(_ context.Context) ([]models.AllowedEmail, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.AllowedEmail{}, nil
}

var _ services.AllowListServicer = (*mockAllowListService)(nil)

// --- mock session provider ---

type mockProvider struct {
	authenticateFn func(token string) (*session.Session, error)
	signOutFn      func(s *session.Session) error
}

func (m *mockProvider) Authenticate(_ context.Context, token string) (*session.Session, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(token)
	}
	return nil, session.ErrInvalidSession
}

func (m *mockProvider) SignOut(_ context.Context, s *session.Session) error {
	if m.signOutFn != nil {
		return m.signOutFn(s)
	}
	return nil
}

var _ session.Provider = (*mockProvider)(nil)
