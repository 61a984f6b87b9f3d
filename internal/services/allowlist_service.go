package services

import (
	"context"
	"errors"
	"net/mail"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/session"
)

// allowListService handles the email allow-list.
type allowListService struct {
	db    *gorm.DB
	audit AuditServicer
}

// NewAllowListService creates a new AllowListServicer.
func NewAllowListService(db *gorm.DB, audit AuditServicer) AllowListServicer {
	return &allowListService{db: db, audit: audit}
}

// IsAllowListed reports whether email may use the application. Matching is
// case-insensitive.
func (s *allowListService) IsAllowListed(ctx context.Context, email string) (bool, error) {
	email = session.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AllowedEmail{}).Where("LOWER(email) = ?", email).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// Add puts email on the allow-list.
func (s *allowListService) Add(ctx context.Context, email string) (*models.AllowedEmail, error) {
	email = session.NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a valid email is required")
	}

	exists, err := s.IsAllowListed(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	// a concurrent Add can still win the race to the unique index
	entry := &models.AllowedEmail{Email: email}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.audit.Log(ctx, "", "add", "allow_list", entry.ID, map[string]any{"email": email})
	return entry, nil
}

// Remove takes email off the allow-list. Existing sessions for it are
// rejected on their next request.
func (s *allowListService) Remove(ctx context.Context, email string) error {
	email = session.NormalizeEmail(email)
	result := s.db.WithContext(ctx).Where("LOWER(email) = ?", email).Delete(&models.AllowedEmail{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "email is not on the allow-list")
	}

	s.audit.Log(ctx, "", "remove", "allow_list", "", map[string]any{"email": email})
	return nil
}

// List returns every allow-listed email in alphabetical order.
func (s *allowListService) List(ctx context.Context) ([]models.AllowedEmail, error) {
	entries := []models.AllowedEmail{}
	if err := s.db.WithContext(ctx).Order("email ASC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
