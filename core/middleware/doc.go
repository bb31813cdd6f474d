// Package middleware groups the HTTP middlewares shared by all features.
//
// Subpackages:
//   - rayid: per-request correlation id, set before anything else runs
//   - auth: static API key gate protecting every API route
package middleware
