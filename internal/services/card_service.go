package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// cardService handles card-related business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

// CreateCard provisions a card for ownerID. Cards are created by an operator,
// not by the owner.
func (s *cardService) CreateCard(ctx context.Context, ownerID, name, lastFour string, openingBalance int64) (*models.Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card name is required")
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" || len(ownerID) > models.MaxUserIDLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "owner ID is required")
	}
	if len(lastFour) != 4 || strings.Trim(lastFour, "0123456789") != "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "last_four must be exactly 4 digits")
	}

	card := &models.Card{
		UserID:   ownerID,
		Name:     name,
		Balance:  openingBalance,
		LastFour: lastFour,
	}
	if err := s.db.WithContext(ctx).Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// ListCards returns every card owned by userID, oldest first.
func (s *cardService) ListCards(ctx context.Context, userID string) ([]models.Card, error) {
	return listCards(s.db.WithContext(ctx), userID)
}

func listCards(db *gorm.DB, userID string) ([]models.Card, error) {
	cards := []models.Card{}
	if err := db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cards, nil
}

// GetCardByID retrieves a card by ID for a specific user
func (s *cardService) GetCardByID(ctx context.Context, userID, cardID string) (*models.Card, error) {
	if !uuid.IsValid(cardID) {
		return nil, apperrors.ErrCardNotFound
	}

	var card models.Card
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// FirstCard returns the user's oldest card, or nil when they have none.
func (s *cardService) FirstCard(ctx context.Context, userID string) (*models.Card, error) {
	var card models.Card
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC, id ASC").First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}
