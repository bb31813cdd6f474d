// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Request Correlation
//
// The WithRayID helper extracts the RayID (request id) from a Fiber context and
// attaches it to the log entry, so every log line produced while handling a
// single scan or finalization request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
package logger
