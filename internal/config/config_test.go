package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("COMMERCE_ENDPOINT", "https://shop.example.com/api/graphql")
	t.Setenv("STOREFRONT_ACCESS_TOKEN", "shop-token")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 20, cfg.CatalogPageSize)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "pretty", cfg.LogFormat)
		assert.NotEmpty(t, cfg.SessionFile)
	})

	t.Run("reads overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("HTTP_TIMEOUT", "3s")
		t.Setenv("CATALOG_PAGE_SIZE", "5")
		t.Setenv("SESSION_FILE", "/tmp/session.json")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 5, cfg.CatalogPageSize)
		assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
	})

	t.Run("unparseable override falls back to the default", func(t *testing.T) {
		setRequired(t)
		t.Setenv("HTTP_TIMEOUT", "soon")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	})

	t.Run("missing commerce endpoint fails validation", func(t *testing.T) {
		t.Setenv("COMMERCE_ENDPOINT", "")
		t.Setenv("STOREFRONT_ACCESS_TOKEN", "shop-token")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "COMMERCE_ENDPOINT")
	})

	t.Run("missing storefront token fails validation", func(t *testing.T) {
		t.Setenv("COMMERCE_ENDPOINT", "https://shop.example.com/api/graphql")
		t.Setenv("STOREFRONT_ACCESS_TOKEN", "")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "STOREFRONT_ACCESS_TOKEN")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		setRequired(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
	})
}
