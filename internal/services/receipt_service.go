package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/intake"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/storage"
)

// receiptService stores receipt images and reads a candidate transaction
// from them. It never writes to the ledger.
type receiptService struct {
	store     storage.ObjectStore
	extractor intake.Extractor
	cards     CardServicer
	maxBytes  int64
}

// NewReceiptService creates a new ReceiptServicer accepting images up to
// maxBytes.
func NewReceiptService(store storage.ObjectStore, extractor intake.Extractor, cards CardServicer, maxBytes int64) ReceiptServicer {
	return &receiptService{
		store:     store,
		extractor: extractor,
		cards:     cards,
		maxBytes:  maxBytes,
	}
}

// Process uploads the image and looks up the caller's first card in
// parallel, then extracts the transaction fields from the stored image.
func (s *receiptService) Process(ctx context.Context, userID string, upload ReceiptUpload) (*ReceiptResult, error) {
	if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "receipt must be an image")
	}
	if upload.Size <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "receipt is empty")
	}
	if upload.Size > s.maxBytes {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("receipt must be at most %d MiB", s.maxBytes>>20))
	}

	var (
		ref   string
		first *models.Card
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ref, err = s.store.Store(gctx, upload.Filename, upload.ContentType, io.LimitReader(upload.Body, s.maxBytes))
		if err != nil {
			logger.Get().Errorw("receipt upload failed", "user_id", userID, "error", err)
			return apperrors.Wrap(apperrors.ErrUploadFailed, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		first, err = s.cards.FirstCard(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	extraction, err := s.extract(ctx, userID, ref, first)
	if err != nil {
		return nil, err
	}
	return &ReceiptResult{ImageURL: ref, Extraction: extraction}, nil
}

// Extract reads the transaction fields from an image that is already stored.
func (s *receiptService) Extract(ctx context.Context, userID, imageRef string) (*intake.Extraction, error) {
	imageRef = strings.TrimSpace(imageRef)
	if imageRef == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "image_url is required")
	}

	first, err := s.cards.FirstCard(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.extract(ctx, userID, imageRef, first)
}

// extract runs the extractor and, when it did not pick a card, suggests the
// user's first card.
func (s *receiptService) extract(ctx context.Context, userID, imageRef string, first *models.Card) (*intake.Extraction, error) {
	extraction, err := s.extractor.Extract(ctx, imageRef)
	if err != nil {
		logger.Get().Warnw("receipt extraction failed", "user_id", userID, "image", imageRef, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrExtractionFailed, err)
	}
	if extraction.CardID == "" && first != nil {
		extraction.CardID = first.ID
	}
	return extraction, nil
}
