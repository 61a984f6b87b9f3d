package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/money"
	"fintrack/internal/session"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// getSession returns the session the access gate attached to the request.
func getSession(c *gin.Context) (*session.Session, error) {
	value, exists := c.Get(middleware.SessionKey)
	if !exists {
		return nil, apperrors.ErrUnauthorized
	}
	s, ok := value.(*session.Session)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return s, nil
}

// bindingError converts a request binding failure to an AppError. Amount and
// category failures keep their own codes so clients can point at the field.
func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "Amount" || fe.Tag() == "decimal_amount":
		return apperrors.ErrInvalidAmount
	case fe.Tag() == "category":
		return apperrors.ErrInvalidCategory
	case fe.Tag() == "required":
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s is required", fe.Field()))
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag()))
	}
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// CardResponse represents a card in the response. Balance is in cents;
// BalanceDecimal is the same value as a decimal string.
type CardResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Balance        int64     `json:"balance"`
	BalanceDecimal string    `json:"balance_decimal"`
	LastFour       string    `json:"last_four"`
	CreatedAt      time.Time `json:"created_at"`
}

func toCardResponse(card *models.Card) CardResponse {
	return CardResponse{
		ID:             card.ID,
		Name:           card.Name,
		Balance:        card.Balance,
		BalanceDecimal: money.Format(card.Balance),
		LastFour:       card.LastFour,
		CreatedAt:      card.CreatedAt,
	}
}

func toCardResponses(cards []models.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, toCardResponse(&cards[i]))
	}
	return out
}

// TransactionResponse represents a transaction in the response. Amount is in
// cents, negative for expenses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	CardID        string          `json:"card_id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        int64           `json:"amount"`
	AmountDecimal string          `json:"amount_decimal"`
	Category      models.Category `json:"category"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		CardID:        tx.CardID,
		Date:          tx.Date.Format(time.DateOnly),
		Description:   tx.Description,
		Amount:        tx.Amount,
		AmountDecimal: money.Format(tx.Amount),
		Category:      tx.Category,
		CreatedAt:     tx.CreatedAt,
	}
}

func toTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	return out
}
