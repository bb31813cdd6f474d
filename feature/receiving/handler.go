package receiving

import (
	"errors"
	"time"

	"receiving-manager/core/logger"
	"receiving-manager/feature/receiving/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the receiving workflow.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the receiving routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/receiving")
	group.Get("/documents", h.HandleListDocuments)
	group.Get("/documents/:id", h.HandleGetDocument)
	group.Get("/documents/:id/resolve", h.HandleResolve)
	group.Post("/documents/:id/conference", h.HandleStartConference)
	group.Get("/documents/:id/conference", h.HandleProgress)
	group.Post("/documents/:id/conference/lines", h.HandleSubmitLine)
	group.Post("/documents/:id/conference/finalize", h.HandleFinalize)
}

// submitLineRequest is the JSON body of a scan-and-count submission.
type submitLineRequest struct {
	Barcode     string     `json:"barcode"`
	Quantity    int        `json:"quantity"`
	ArrivalDate *time.Time `json:"arrival_date,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}

// HandleListDocuments lists receipt documents by status.
// @Summary List Receipt Documents
// @Description List receipt documents filtered by status (default PENDING).
// @Tags receiving
// @Produce json
// @Param status query string false "Document status" default(PENDING)
// @Success 200 {array} models.ReceiptDocument
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /receiving/documents [get]
func (h *Handler) HandleListDocuments(c *fiber.Ctx) error {
	status := models.DocumentStatus(c.Query("status", string(models.DocumentPending)))
	l := logger.WithRayID(h.service.logger, c)

	docs, err := h.service.ListDocuments(c.Context(), status)
	if err != nil {
		l.Error("Document listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(docs)
}

// HandleGetDocument returns a document with its expected lines.
// @Summary Get Receipt Document
// @Description Get a receipt document and its expected lines.
// @Tags receiving
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} models.ReceiptDocument
// @Failure 404 {object} map[string]string "Not Found"
// @Router /receiving/documents/{id} [get]
func (h *Handler) HandleGetDocument(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}

	doc, err := h.service.GetDocument(c.Context(), uint(id))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(doc)
}

// HandleResolve probes a barcode against a document.
// @Summary Resolve Barcode
// @Description Resolve a scanned barcode to a product and its expected line on the document. Read-only.
// @Tags receiving
// @Produce json
// @Param id path int true "Document ID"
// @Param barcode query string true "Scanned barcode"
// @Success 200 {object} Resolution
// @Failure 404 {object} map[string]string "Unknown barcode or product not on document"
// @Router /receiving/documents/{id}/resolve [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}
	barcode := c.Query("barcode")
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "barcode query parameter is required"})
	}

	resolution, err := h.service.Resolve(c.Context(), barcode, uint(id))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(resolution)
}

// HandleStartConference starts or resumes the conference of a document.
// @Summary Start Conference
// @Description Start (or resume) the conference of a receipt document. Re-entrant on IN_PROGRESS documents.
// @Tags receiving
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} models.ReceiptDocument
// @Failure 409 {object} map[string]string "Invalid state"
// @Router /receiving/documents/{id}/conference [post]
func (h *Handler) HandleStartConference(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}
	l := logger.WithRayID(h.service.logger, c)

	doc, err := h.service.StartConference(c.Context(), uint(id))
	if err != nil {
		l.Warn("Conference start rejected", zap.Int("document_id", id), zap.Error(err))
		return h.renderError(c, err)
	}

	return c.JSON(doc)
}

// HandleProgress returns the current conference state.
// @Summary Conference Progress
// @Description Counted lines plus the expected lines still missing.
// @Tags receiving
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} Progress
// @Failure 404 {object} map[string]string "Not Found"
// @Router /receiving/documents/{id}/conference [get]
func (h *Handler) HandleProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}

	progress, err := h.service.Progress(c.Context(), uint(id))
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(progress)
}

// HandleSubmitLine records one scan-and-count submission.
// @Summary Submit Conference Line
// @Description Submit a counted quantity for a scanned barcode. Quantities accumulate across submissions for the same product.
// @Tags receiving
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param body body submitLineRequest true "Submission"
// @Success 200 {object} models.ConferenceLine
// @Failure 400 {object} map[string]string "Invalid quantity"
// @Failure 404 {object} map[string]string "Unknown barcode or product not on document"
// @Failure 409 {object} map[string]string "Invalid state"
// @Router /receiving/documents/{id}/conference/lines [post]
func (h *Handler) HandleSubmitLine(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}

	var body submitLineRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	l := logger.WithRayID(h.service.logger, c)

	line, err := h.service.SubmitLine(c.Context(), SubmitRequest{
		DocumentID:  uint(id),
		Barcode:     body.Barcode,
		Quantity:    body.Quantity,
		ArrivalDate: body.ArrivalDate,
		ExpiryDate:  body.ExpiryDate,
	})
	if err != nil {
		l.Warn("Line submission rejected",
			zap.Int("document_id", id),
			zap.String("barcode", body.Barcode),
			zap.Error(err),
		)
		return h.renderError(c, err)
	}

	return c.JSON(line)
}

// HandleFinalize closes the conference and applies stock deltas.
// @Summary Finalize Conference
// @Description Validate completeness, apply stock deltas atomically, and return the finalization summary.
// @Tags receiving
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} Summary
// @Failure 409 {object} map[string]string "Invalid state"
// @Failure 422 {object} map[string]any "Incomplete conference"
// @Failure 500 {object} map[string]string "Commit failed (retryable)"
// @Router /receiving/documents/{id}/conference/finalize [post]
func (h *Handler) HandleFinalize(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid document id"})
	}
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Finalize(c.Context(), uint(id))
	if err != nil {
		l.Warn("Finalize rejected", zap.Int("document_id", id), zap.Error(err))
		return h.renderError(c, err)
	}

	return c.JSON(summary)
}

// renderError maps workflow errors to HTTP responses. The two lookup failure
// modes keep distinct codes so the scanner UI can render them differently.
func (h *Handler) renderError(c *fiber.Ctx, err error) error {
	var incomplete *IncompleteError
	if errors.As(err, &incomplete) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":    "incomplete_conference",
			"error":   incomplete.Error(),
			"missing": incomplete.Missing,
		})
	}

	switch {
	case errors.Is(err, ErrDocumentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code": "document_not_found", "error": err.Error(),
		})
	case errors.Is(err, ErrUnknownBarcode):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code": "unknown_barcode", "error": err.Error(),
		})
	case errors.Is(err, ErrProductNotOnDocument):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code": "not_on_document", "error": err.Error(),
		})
	case errors.Is(err, ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code": "invalid_quantity", "error": err.Error(),
		})
	case errors.Is(err, ErrInvalidStateTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code": "invalid_state", "error": err.Error(),
		})
	case errors.Is(err, ErrCommitFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code": "commit_failed", "error": "finalization failed, please retry", "retryable": true,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
