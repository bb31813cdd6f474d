// Package inventory exposes read-only stock balances.
//
// Balances live on the product rows of the back-office schema and are mutated
// exclusively by the receiving feature's finalization commit; this feature is
// the query surface the scanner UI uses to show on-hand quantities.
package inventory
