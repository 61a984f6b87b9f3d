package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/intake"
	"fintrack/internal/services"
)

// multipartOverhead leaves room for form boundaries and headers on top of
// the image itself.
const multipartOverhead = 1 << 20

// ReceiptHandler handles receipt uploads.
type ReceiptHandler struct {
	receiptService services.ReceiptServicer
	maxBytes       int64
}

// NewReceiptHandler creates a new ReceiptHandler accepting images up to maxBytes.
func NewReceiptHandler(receiptService services.ReceiptServicer, maxBytes int64) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, maxBytes: maxBytes}
}

// ExtractReceiptRequest names an image that is already stored.
type ExtractReceiptRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// ExtractionResponse wraps the fields read from a receipt.
type ExtractionResponse struct {
	Extraction intake.Extraction `json:"extraction"`
}

// UploadReceipt stores a receipt image and suggests a transaction from it
// @Summary     Upload a receipt
// @Description Store a receipt image and return the transaction fields read from it. Nothing is saved to the ledger
// @Tags        receipts
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       receipt formData file true "Receipt image (image/*, at most 10 MiB)"
// @Success     200 {object} services.ReceiptResult "Stored image and suggested transaction"
// @Failure     400 {object} ErrorResponse "Missing or invalid image"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Upload or extraction failed"
// @Router      /receipts [post]
func (h *ReceiptHandler) UploadReceipt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	header, err := c.FormFile("receipt")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "receipt image is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	result, err := h.receiptService.Process(c.Request.Context(), userID, services.ReceiptUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExtractReceipt reads transaction fields from a stored receipt image
// @Summary     Extract receipt fields
// @Description Read the transaction fields from an image that was already uploaded
// @Tags        receipts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExtractReceiptRequest true "Stored image reference"
// @Success     200 {object} ExtractionResponse "Suggested transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Extraction failed"
// @Router      /receipts/extract [post]
func (h *ReceiptHandler) ExtractReceipt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExtractReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	extraction, err := h.receiptService.Extract(c.Request.Context(), userID, req.ImageURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExtractionResponse{Extraction: *extraction})
}
