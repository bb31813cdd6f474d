// Package server holds the HTTP server configuration.
//
// It is kept as a separate package so that core/config can embed it without
// creating an import cycle with the features that consume it.
package server
