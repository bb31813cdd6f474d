// Package models defines the persistence models for the goods-receipt
// conference workflow: products, receipt documents with their expected lines,
// and the conference lines produced while counting.
//
// Document and line statuses are closed string-typed enumerations with
// transition predicates, so every state check goes through one place.
package models
