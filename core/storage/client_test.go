package storage_test

import (
	"testing"

	"property-insights/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		})
		require.NoError(t, err, "scheme prefixes are tolerated")
		assert.NotNil(t, client)
	})

	t.Run("Invalid endpoint", func(t *testing.T) {
		_, err := storage.NewClient(storage.Config{Endpoint: "not a host:port"})
		assert.Error(t, err)
	})
}
