package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/session"
)

// SessionHandler exposes the caller's session.
type SessionHandler struct {
	provider session.Provider
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(provider session.Provider) *SessionHandler {
	return &SessionHandler{provider: provider}
}

// SessionResponse represents the authenticated caller.
type SessionResponse struct {
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// GetSession returns the authenticated caller
// @Summary     Current session
// @Description Get the user ID and email of the authenticated, allow-listed caller
// @Tags        session
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SessionResponse "Current session"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Email not allow-listed"
// @Router      /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := SessionResponse{UserID: s.UserID, Email: s.Email}
	if !s.ExpiresAt.IsZero() {
		resp.ExpiresAt = &s.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut ends the caller's session with the identity provider
// @Summary     Sign out
// @Description Sign the caller out at the identity provider
// @Tags        session
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} MessageResponse "Signed out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /session/signout [post]
func (h *SessionHandler) SignOut(c *gin.Context) {
	s, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.provider.SignOut(c.Request.Context(), s); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Signed out"})
}
