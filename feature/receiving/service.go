package receiving

import (
	"context"

	"receiving-manager/core/storage"
	"receiving-manager/feature/receiving/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service bundles the conference workflow for the HTTP layer and the CLI.
type Service struct {
	store  *Store
	engine *Engine
	lookup *Lookup
	logger *zap.Logger
}

// NewService wires the store, lookup, engine and committer together.
// The storage client may be nil; summaries are then not archived.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	store := NewStore(db)
	lookup := NewLookup(store, store)
	committer := NewStockCommitter(db, logger)

	var archiver *SummaryArchiver
	if client != nil {
		archiver = NewSummaryArchiver(client, bucket)
	}

	engine := NewEngine(store, store, lookup, committer, archiver, logger)

	return &Service{
		store:  store,
		engine: engine,
		lookup: lookup,
		logger: logger,
	}
}

// StartConference starts or resumes the conference of a document.
func (s *Service) StartConference(ctx context.Context, documentID uint) (*models.ReceiptDocument, error) {
	return s.engine.StartConference(ctx, documentID)
}

// SubmitLine records one scan-and-count submission.
func (s *Service) SubmitLine(ctx context.Context, req SubmitRequest) (*models.ConferenceLine, error) {
	return s.engine.SubmitLine(ctx, req)
}

// Finalize closes the conference and applies the stock deltas.
func (s *Service) Finalize(ctx context.Context, documentID uint) (*Summary, error) {
	return s.engine.Finalize(ctx, documentID)
}

// Progress returns the current conference state of a document.
func (s *Service) Progress(ctx context.Context, documentID uint) (*Progress, error) {
	return s.engine.Progress(ctx, documentID)
}

// Resolve probes a barcode against a document without mutating anything.
func (s *Service) Resolve(ctx context.Context, barcode string, documentID uint) (*Resolution, error) {
	return s.lookup.Resolve(ctx, barcode, documentID)
}

// GetDocument loads a document with its expected lines.
func (s *Service) GetDocument(ctx context.Context, documentID uint) (*models.ReceiptDocument, error) {
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	lines, err := s.store.ListExpectedLines(ctx, documentID)
	if err != nil {
		return nil, err
	}
	doc.ExpectedLines = lines
	return doc, nil
}

// ListDocuments returns documents with the given status, newest first.
func (s *Service) ListDocuments(ctx context.Context, status models.DocumentStatus) ([]models.ReceiptDocument, error) {
	return s.store.ListDocuments(ctx, status)
}
