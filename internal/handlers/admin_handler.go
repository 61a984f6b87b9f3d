package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/money"
	"fintrack/internal/services"
)

// AdminHandler serves operator endpoints: the allow-list and card provisioning.
type AdminHandler struct {
	allowList   services.AllowListServicer
	cardService services.CardServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(allowList services.AllowListServicer, cardService services.CardServicer) *AdminHandler {
	return &AdminHandler{allowList: allowList, cardService: cardService}
}

// AllowListRequest adds an email to the allow-list.
type AllowListRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

// AllowedEmailResponse represents an allow-list entry.
type AllowedEmailResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCardRequest provisions a card for a user. OpeningBalance is a decimal
// string and defaults to zero.
type CreateCardRequest struct {
	UserID         string `json:"user_id" binding:"required,max=128"`
	Name           string `json:"name" binding:"required,max=100"`
	LastFour       string `json:"last_four" binding:"required,last_four"`
	OpeningBalance string `json:"opening_balance" binding:"omitempty,decimal_amount" example:"1500.00"`
}

// ListAllowList returns every allow-listed email
// @Summary     List allow-list
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Success     200 {array}  AllowedEmailResponse "Allow-listed emails"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     503 {object} ErrorResponse "Admin API not configured"
// @Router      /admin/allow-list [get]
func (h *AdminHandler) ListAllowList(c *gin.Context) {
	entries, err := h.allowList.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]AllowedEmailResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AllowedEmailResponse{ID: e.ID, Email: e.Email, CreatedAt: e.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{"emails": out})
}

// AddAllowList adds an email to the allow-list
// @Summary     Allow an email
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       request body AllowListRequest true "Email to allow"
// @Success     201 {object} AllowedEmailResponse "Email allowed"
// @Failure     400 {object} ErrorResponse "Invalid email"
// @Failure     409 {object} ErrorResponse "Already allowed"
// @Router      /admin/allow-list [post]
func (h *AdminHandler) AddAllowList(c *gin.Context) {
	var req AllowListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	entry, err := h.allowList.Add(c.Request.Context(), req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AllowedEmailResponse{ID: entry.ID, Email: entry.Email, CreatedAt: entry.CreatedAt})
}

// RemoveAllowList removes an email from the allow-list
// @Summary     Revoke an email
// @Description Remove an email from the allow-list; its sessions are rejected from the next request on
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Param       email path string true "Email"
// @Success     200 {object} MessageResponse "Email removed"
// @Failure     404 {object} ErrorResponse "Email not on the allow-list"
// @Router      /admin/allow-list/{email} [delete]
func (h *AdminHandler) RemoveAllowList(c *gin.Context) {
	if err := h.allowList.Remove(c.Request.Context(), c.Param("email")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Email removed from the allow-list"})
}

// CreateCard provisions a card for a user
// @Summary     Provision a card
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    AdminKey
// @Param       request body CreateCardRequest true "Card details"
// @Success     201 {object} CardResponse "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /admin/cards [post]
func (h *AdminHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	var opening int64
	if req.OpeningBalance != "" {
		var err error
		opening, err = money.Parse(req.OpeningBalance)
		if err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidAmount, err))
			return
		}
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), req.UserID, req.Name, req.LastFour, opening)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": toCardResponse(card)})
}
