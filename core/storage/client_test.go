package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	cfg := Config{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_StripsScheme(t *testing.T) {
	// Connection is lazy, so construction succeeds as long as the endpoint
	// parses once the scheme is stripped.
	cfg := Config{
		Endpoint:  "https://storage.example.com:9000",
		AccessKey: "key",
		SecretKey: "secret",
		UseSSL:    true,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_InvalidEndpoint(t *testing.T) {
	cfg := Config{
		Endpoint: "localhost:9000/with/path",
	}

	_, err := NewClient(cfg)
	assert.Error(t, err)
}
