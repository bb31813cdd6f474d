package receiving

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"receiving-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// SummaryArchiver writes finalization summaries to object storage so the
// audit trail of a receipt survives independently of the database.
type SummaryArchiver struct {
	client storage.Client
	bucket string
}

// NewSummaryArchiver creates an archiver writing to the given bucket.
func NewSummaryArchiver(client storage.Client, bucket string) *SummaryArchiver {
	return &SummaryArchiver{client: client, bucket: bucket}
}

// Archive stores the summary as JSON under conferences/<reference>.json.
// It is called only after a successful commit; failures here must not affect
// the document's outcome, so the caller logs and moves on.
func (a *SummaryArchiver) Archive(ctx context.Context, summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	objectName := fmt.Sprintf("conferences/%s.json", summary.Reference)
	if summary.Reference == "" {
		objectName = fmt.Sprintf("conferences/document-%d.json", summary.DocumentID)
	}

	_, err = a.client.PutObject(
		ctx,
		a.bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to archive summary %s: %w", objectName, err)
	}

	return nil
}
