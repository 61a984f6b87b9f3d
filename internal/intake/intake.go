// Package intake turns a stored receipt image into a candidate transaction
// the user reviews before saving.
package intake

import (
	"context"
	"time"

	"fintrack/internal/models"
)

// Extraction holds the fields read from a receipt. Amount is the decimal
// string the user will review, e.g. "-4.99".
type Extraction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      string          `json:"amount"`
	Category    models.Category `json:"category"`
	CardID      string          `json:"card_id"`
}

// Extractor reads transaction fields from a stored image.
type Extractor interface {
	Extract(ctx context.Context, imageRef string) (*Extraction, error)
}

// MockExtractor stands in for a real OCR backend: after Delay it returns the
// same coffee-shop purchase dated today, with no card chosen.
type MockExtractor struct {
	Delay time.Duration
	Now   func() time.Time
}

// NewMockExtractor creates a MockExtractor with the given delay.
func NewMockExtractor(delay time.Duration) *MockExtractor {
	return &MockExtractor{Delay: delay, Now: time.Now}
}

// Extract waits for the configured delay, honouring cancellation.
func (m *MockExtractor) Extract(ctx context.Context, _ string) (*Extraction, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	return &Extraction{
		Date:        now().Format(time.DateOnly),
		Description: "Coffee Shop Purchase",
		Amount:      "-4.99",
		Category:    models.CategoryFood,
	}, nil
}
