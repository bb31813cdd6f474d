// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally seeded by a .env
// file during development. Defaults are declared next to the fields that use
// them via 'default' struct tags, and every nested key is reachable as an
// environment variable (server.port -> SERVER_PORT).
package config
