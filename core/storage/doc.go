// Package storage provides the object storage client used for conference
// archives.
//
// Finalized conference summaries are written as JSON documents to a bucket so
// that the audit trail of a receipt survives independently of the database.
// The Client interface wraps the subset of Minio operations the application
// needs; a testify mock lives under mocks/ for tests.
package storage
