package receiving

import (
	"fmt"
	"time"

	"receiving-manager/feature/receiving/models"
)

// DivergenceRecord describes one line whose counted quantity differed from
// the expected one.
type DivergenceRecord struct {
	ProductID        uint   `json:"product_id"`
	ProductName      string `json:"product_name,omitempty"`
	ExpectedQuantity int    `json:"expected_quantity"`
	CountedQuantity  int    `json:"counted_quantity"`
	// Note is a human-readable description of the divergence.
	Note string `json:"note"`
}

// Summary is the outcome of a finalized conference. It is computed once per
// finalization and returned to the caller; the document's terminal status is
// the durable record.
type Summary struct {
	DocumentID  uint                  `json:"document_id"`
	Reference   string                `json:"reference"`
	Status      models.DocumentStatus `json:"status"`
	Matched     int                   `json:"matched"`
	Divergent   int                   `json:"divergent"`
	Total       int                   `json:"total"`
	Divergences []DivergenceRecord    `json:"divergences"`
	FinalizedAt time.Time             `json:"finalized_at"`
}

// buildSummary aggregates the counted lines into a finalization summary.
// productNames maps product ids to display names for the divergence records.
func buildSummary(doc *models.ReceiptDocument, lines []models.ConferenceLine, productNames map[uint]string) *Summary {
	summary := &Summary{
		DocumentID:  doc.ID,
		Reference:   doc.Reference,
		Total:       len(lines),
		Divergences: []DivergenceRecord{},
		FinalizedAt: time.Now(),
	}

	for _, line := range lines {
		if line.Status == models.LineMatched {
			summary.Matched++
			continue
		}
		summary.Divergent++
		summary.Divergences = append(summary.Divergences, DivergenceRecord{
			ProductID:        line.ProductID,
			ProductName:      productNames[line.ProductID],
			ExpectedQuantity: line.ExpectedQuantity,
			CountedQuantity:  line.CountedQuantity,
			Note:             divergenceNote(line.ExpectedQuantity, line.CountedQuantity),
		})
	}

	if summary.Divergent == 0 {
		summary.Status = models.DocumentCompleted
	} else {
		summary.Status = models.DocumentCompletedWithDivergence
	}

	return summary
}

// divergenceNote renders the mismatch direction for the operator.
func divergenceNote(expected, counted int) string {
	if counted < expected {
		return fmt.Sprintf("short %d unit(s): expected %d, counted %d", expected-counted, expected, counted)
	}
	return fmt.Sprintf("over %d unit(s): expected %d, counted %d", counted-expected, expected, counted)
}
