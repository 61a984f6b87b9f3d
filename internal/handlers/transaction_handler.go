package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	defaultLimit       int
}

// NewTransactionHandler creates a new TransactionHandler. defaultLimit is
// used when a list request does not name a limit.
func NewTransactionHandler(transactionService services.TransactionServicer, defaultLimit int) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, defaultLimit: defaultLimit}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is a signed decimal string: "-4.99" is an expense, "30" is income.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required" example:"2026-10-18"`
	Description string          `json:"description" binding:"required,max=500" example:"Coffee Shop Purchase"`
	Amount      string          `json:"amount" binding:"required,decimal_amount" example:"-4.99"`
	Category    models.Category `json:"category" binding:"required,category" example:"food"`
	CardID      string          `json:"card_id" binding:"required"`
}

// CreateTransaction records a transaction and applies it to the card balance
// @Summary     Create a transaction
// @Description Record a transaction against one of the caller's cards; the card balance changes by the signed amount
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Card belongs to another user"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, services.CandidateTransaction{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		CardID:      req.CardID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": toTransactionResponse(transaction)})
}

// GetTransactions lists the caller's most recent transactions
// @Summary     List transactions
// @Description Get the most recent transactions of the authenticated user, newest date first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Number of transactions (1-100)"
// @Success     200 {object} pagination.ListResponse[TransactionResponse] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req pagination.LimitRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	req.Defaults(h.defaultLimit)

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), userID, req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewListResponse(toTransactionResponses(transactions), req.Limit))
}

// GetTransactionByID returns one of the caller's transactions
// @Summary     Get transaction
// @Description Get a transaction owned by the authenticated user
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": toTransactionResponse(transaction)})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction owned by the caller. Whether the card balance is reversed depends on the server's delete mode
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}
