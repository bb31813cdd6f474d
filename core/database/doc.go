// Package database provides the GORM/MySQL connection for the back-office
// schema and a small schema inspector.
//
// The schema itself (products, receipt documents, expected lines) is owned by
// the upstream back-office application; this service only verifies at startup
// that the tables it depends on exist, and never runs migrations of its own.
package database
