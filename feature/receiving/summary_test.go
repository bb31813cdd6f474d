package receiving

import (
	"testing"

	"receiving-manager/feature/receiving/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary_AllMatched(t *testing.T) {
	doc := &models.ReceiptDocument{ID: 10, Reference: "NF-1042"}
	lines := []models.ConferenceLine{
		{ProductID: 1, ExpectedQuantity: 10, CountedQuantity: 10, Status: models.LineMatched},
		{ProductID: 2, ExpectedQuantity: 5, CountedQuantity: 5, Status: models.LineMatched},
	}

	summary := buildSummary(doc, lines, nil)

	assert.Equal(t, models.DocumentCompleted, summary.Status)
	assert.Equal(t, 2, summary.Matched)
	assert.Zero(t, summary.Divergent)
	assert.Equal(t, 2, summary.Total)
	assert.Empty(t, summary.Divergences)
	assert.Equal(t, "NF-1042", summary.Reference)
	assert.False(t, summary.FinalizedAt.IsZero())
}

func TestBuildSummary_Divergences(t *testing.T) {
	doc := &models.ReceiptDocument{ID: 10, Reference: "NF-1042"}
	lines := []models.ConferenceLine{
		{ProductID: 1, ExpectedQuantity: 10, CountedQuantity: 10, Status: models.LineMatched},
		{ProductID: 2, ExpectedQuantity: 5, CountedQuantity: 3, Status: models.LineDivergent},
		{ProductID: 3, ExpectedQuantity: 2, CountedQuantity: 4, Status: models.LineDivergent},
	}
	names := map[uint]string{2: "Beans 500g", 3: "Olive Oil"}

	summary := buildSummary(doc, lines, names)

	assert.Equal(t, models.DocumentCompletedWithDivergence, summary.Status)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 2, summary.Divergent)
	assert.Equal(t, 3, summary.Total)
	require.Len(t, summary.Divergences, 2)

	short := summary.Divergences[0]
	assert.Equal(t, "Beans 500g", short.ProductName)
	assert.Equal(t, "short 2 unit(s): expected 5, counted 3", short.Note)

	over := summary.Divergences[1]
	assert.Equal(t, "Olive Oil", over.ProductName)
	assert.Equal(t, "over 2 unit(s): expected 2, counted 4", over.Note)
}
