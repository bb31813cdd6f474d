// Package receiving implements the goods-receipt reconciliation workflow:
// the "conference" of incoming merchandise against a pending receipt document.
//
// # Workflow
//
// A caller starts a document's conference (PENDING -> IN_PROGRESS), then
// repeatedly submits barcode + counted quantity for products on that
// document. Each submission resolves the barcode through the lookup index,
// accumulates the count onto the document's conference line for that product,
// and recomputes the line's MATCHED/DIVERGENT status. Finalization validates
// that every expected line was counted, applies all stock deltas atomically,
// freezes the document in a terminal status, and returns a summary.
//
// # State machines
//
//	document: PENDING -> IN_PROGRESS -> {COMPLETED, COMPLETED_WITH_DIVERGENCE}
//	line:     MATCHED iff countedQuantity == expectedQuantity, else DIVERGENT
//
// Terminal document states are final. StartConference is re-entrant on
// IN_PROGRESS documents so an interrupted session can be resumed without
// losing counted lines.
//
// # Concurrency
//
// Operations on the same document are serialized by a per-document mutex held
// for the duration of one call; operations on different documents are fully
// independent. The finalization commit runs in a single database transaction,
// so stock balances and the document's terminal status change together or not
// at all.
package receiving
