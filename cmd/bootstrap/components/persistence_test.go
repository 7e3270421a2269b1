//go:build unit

package components_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"catalog-service/cmd/bootstrap/components"
	"catalog-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewPersistenceMemoryDriver(t *testing.T) {
	t.Run("seeds the product lookup from the configured file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"product_id": "product-1", "product_number": "P-0001"}]`), 0o600))

		cfg := config.NewTestConfig()
		cfg.Store = config.StoreConfig{Driver: config.StoreDriverMemory, SeedProducts: path}

		p, err := components.NewPersistence(fxtest.NewLifecycle(t), cfg, discard)
		require.NoError(t, err)

		snap, err := p.UnitOfWork.CommandReads().ProductByID(context.Background(), "product-1")
		require.NoError(t, err)
		assert.Equal(t, "P-0001", snap.ProductNumber)
	})

	t.Run("starts empty without a seed file", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Store = config.StoreConfig{Driver: config.StoreDriverMemory}

		p, err := components.NewPersistence(fxtest.NewLifecycle(t), cfg, discard)
		require.NoError(t, err)
		require.NotNil(t, p.OfferReads)

		_, err = p.UnitOfWork.CommandReads().ProductByID(context.Background(), "product-1")
		assert.Error(t, err)
	})

	t.Run("unreadable seed file fails startup", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Store = config.StoreConfig{Driver: config.StoreDriverMemory, SeedProducts: filepath.Join(t.TempDir(), "absent.json")}

		_, err := components.NewPersistence(fxtest.NewLifecycle(t), cfg, discard)
		assert.Error(t, err)
	})
}

func TestNewPersistenceUnknownDriver(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Store = config.StoreConfig{Driver: "sqlite"}

	_, err := components.NewPersistence(fxtest.NewLifecycle(t), cfg, discard)
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}
