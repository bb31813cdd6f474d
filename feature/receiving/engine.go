package receiving

import (
	"context"
	"sync"
	"time"

	"receiving-manager/feature/receiving/models"

	"go.uber.org/zap"
)

// SubmitRequest is one scan-and-count submission for a document.
type SubmitRequest struct {
	DocumentID uint
	// Barcode is the literal string read by the scanner.
	Barcode string
	// Quantity is the amount counted in this submission. It is added to any
	// previously accumulated count for the same product.
	Quantity int
	// ArrivalDate and ExpiryDate are optional operator inputs; when provided
	// they replace the previously captured values on the line.
	ArrivalDate *time.Time
	ExpiryDate  *time.Time
}

// Progress is a read-only view of a running conference: what has been counted
// and which expected lines are still untouched.
type Progress struct {
	Document models.ReceiptDocument  `json:"document"`
	Lines    []models.ConferenceLine `json:"lines"`
	Missing  []MissingLine           `json:"missing"`
}

// Engine owns the document and line state machines of the conference
// workflow.
//
// Submissions for the same document are serialized by a per-document mutex
// held for the duration of a single call; different documents proceed fully
// independently. No lock is ever held across calls, so an abandoned session
// simply leaves the document IN_PROGRESS and resumable.
type Engine struct {
	documents DocumentStore
	lines     ConferenceStore
	lookup    *Lookup
	committer Committer
	archiver  *SummaryArchiver
	logger    *zap.Logger

	mu       sync.Mutex
	docLocks map[uint]*sync.Mutex
}

// NewEngine creates a reconciliation engine. The archiver may be nil, in
// which case summaries are not archived.
func NewEngine(documents DocumentStore, lines ConferenceStore, lookup *Lookup, committer Committer, archiver *SummaryArchiver, logger *zap.Logger) *Engine {
	return &Engine{
		documents: documents,
		lines:     lines,
		lookup:    lookup,
		committer: committer,
		archiver:  archiver,
		logger:    logger,
		docLocks:  make(map[uint]*sync.Mutex),
	}
}

// lockDocument returns the mutex serializing operations on one document.
func (e *Engine) lockDocument(documentID uint) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.docLocks[documentID]
	if !ok {
		lock = &sync.Mutex{}
		e.docLocks[documentID] = lock
	}
	return lock
}

// StartConference moves a document from PENDING to IN_PROGRESS.
//
// Starting an already IN_PROGRESS conference is explicitly allowed and does
// not reset any counted line: an interrupted session (or a second operator)
// resumes where the document stands. Any other source state fails with
// ErrInvalidStateTransition.
func (e *Engine) StartConference(ctx context.Context, documentID uint) (*models.ReceiptDocument, error) {
	lock := e.lockDocument(documentID)
	lock.Lock()
	defer lock.Unlock()

	doc, err := e.documents.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if !doc.Status.CanStartConference() {
		return nil, ErrInvalidStateTransition
	}

	if doc.Status == models.DocumentInProgress {
		// Re-entrant resume
		return doc, nil
	}

	if err := e.documents.SetStatus(ctx, documentID, models.DocumentInProgress); err != nil {
		return nil, err
	}
	doc.Status = models.DocumentInProgress

	e.logger.Info("Conference started",
		zap.Uint("document_id", documentID),
		zap.String("reference", doc.Reference),
	)
	return doc, nil
}

// SubmitLine records one scan-and-count submission.
//
// The quantity is accumulated onto the existing line for the product, never
// overwritten: scanning the same barcode twice with quantity 3 yields a
// counted quantity of 6. Partial deliveries of the same item across several
// boxes are the normal case on a receiving dock. The line status is
// recomputed on every submission, so MATCHED/DIVERGENT always reflects the
// current cumulative count.
func (e *Engine) SubmitLine(ctx context.Context, req SubmitRequest) (*models.ConferenceLine, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	lock := e.lockDocument(req.DocumentID)
	lock.Lock()
	defer lock.Unlock()

	// Resolve checks the document is IN_PROGRESS and distinguishes unknown
	// barcodes from products missing on this document. Nothing has been
	// mutated if it fails.
	resolution, err := e.lookup.Resolve(ctx, req.Barcode, req.DocumentID)
	if err != nil {
		return nil, err
	}

	line, err := e.lines.GetLine(ctx, req.DocumentID, resolution.Product.ID)
	if err != nil {
		return nil, err
	}

	if line == nil {
		line = &models.ConferenceLine{
			DocumentID:       req.DocumentID,
			ProductID:        resolution.Product.ID,
			ExpectedQuantity: resolution.Expected.ExpectedQuantity,
			CountedQuantity:  req.Quantity,
		}
	} else {
		line.CountedQuantity += req.Quantity
	}

	line.BarcodeRead = req.Barcode
	if req.ArrivalDate != nil {
		line.ArrivalDate = req.ArrivalDate
	}
	if req.ExpiryDate != nil {
		line.ExpiryDate = req.ExpiryDate
	}
	line.Recompute()

	if err := e.lines.SaveLine(ctx, line); err != nil {
		return nil, err
	}

	e.logger.Debug("Line submitted",
		zap.Uint("document_id", req.DocumentID),
		zap.Uint("product_id", resolution.Product.ID),
		zap.Int("counted", line.CountedQuantity),
		zap.Int("expected", line.ExpectedQuantity),
		zap.String("status", string(line.Status)),
	)
	return line, nil
}

// Finalize closes the conference of a document.
//
// Precondition: every expected line has been counted at least once. When it
// holds, the summary is computed, the committer applies all stock deltas and
// the terminal status in one atomic unit, and the summary is returned. When
// the commit fails the document stays IN_PROGRESS with every counted line
// intact, and Finalize may be retried.
func (e *Engine) Finalize(ctx context.Context, documentID uint) (*Summary, error) {
	lock := e.lockDocument(documentID)
	lock.Lock()
	defer lock.Unlock()

	doc, err := e.documents.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != models.DocumentInProgress {
		return nil, ErrInvalidStateTransition
	}

	expected, err := e.documents.ListExpectedLines(ctx, documentID)
	if err != nil {
		return nil, err
	}
	lines, err := e.lines.ListLines(ctx, documentID)
	if err != nil {
		return nil, err
	}

	productNames := make(map[uint]string, len(expected))
	counted := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if line.CountedQuantity > 0 {
			counted[line.ProductID] = true
		}
	}

	var missing []MissingLine
	for _, exp := range expected {
		if exp.Product != nil {
			productNames[exp.ProductID] = exp.Product.Name
		}
		if !counted[exp.ProductID] {
			missing = append(missing, MissingLine{
				ProductID:        exp.ProductID,
				ProductName:      productNames[exp.ProductID],
				ExpectedQuantity: exp.ExpectedQuantity,
			})
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}

	summary := buildSummary(doc, lines, productNames)

	if err := e.committer.Commit(ctx, documentID, summary.Status, lines); err != nil {
		return nil, err
	}

	// Past the commit point the document is immutable; archive failures are
	// logged and never surfaced.
	if e.archiver != nil {
		if err := e.archiver.Archive(ctx, summary); err != nil {
			e.logger.Warn("Summary archive failed",
				zap.Uint("document_id", documentID),
				zap.Error(err),
			)
		}
	}

	e.logger.Info("Conference finalized",
		zap.Uint("document_id", documentID),
		zap.String("status", string(summary.Status)),
		zap.Int("matched", summary.Matched),
		zap.Int("divergent", summary.Divergent),
	)
	return summary, nil
}

// Progress reports the current state of a conference without mutating it.
func (e *Engine) Progress(ctx context.Context, documentID uint) (*Progress, error) {
	doc, err := e.documents.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	expected, err := e.documents.ListExpectedLines(ctx, documentID)
	if err != nil {
		return nil, err
	}
	lines, err := e.lines.ListLines(ctx, documentID)
	if err != nil {
		return nil, err
	}

	counted := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if line.CountedQuantity > 0 {
			counted[line.ProductID] = true
		}
	}

	missing := []MissingLine{}
	for _, exp := range expected {
		if counted[exp.ProductID] {
			continue
		}
		m := MissingLine{ProductID: exp.ProductID, ExpectedQuantity: exp.ExpectedQuantity}
		if exp.Product != nil {
			m.ProductName = exp.Product.Name
		}
		missing = append(missing, m)
	}

	return &Progress{Document: *doc, Lines: lines, Missing: missing}, nil
}
