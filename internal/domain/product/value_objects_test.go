//go:build unit

package product_test

import (
	"testing"

	"catalog-service/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	t.Run("type is normalized and key ignores name", func(t *testing.T) {
		a, err := product.NewLink("pattern", "X", "Old")
		require.NoError(t, err)
		b, err := product.NewLink("PATTERN", "X", "New")
		require.NoError(t, err)

		assert.Equal(t, product.LinkTypePattern, a.Type)
		assert.Equal(t, a.Key(), b.Key())
		assert.True(t, product.Links{a}.Contains(b.Key()))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := product.NewLink("SHOE", "X", "")
		assert.ErrorIs(t, err, product.ErrInvalidLinkType)
		_, err = product.NewLink("FABRIC", " ", "")
		assert.ErrorIs(t, err, product.ErrEmptyLinkID)
	})
}

func TestFabricComposition(t *testing.T) {
	cotton, err := product.NewFabricCompositionItem("cotton", 8000)
	require.NoError(t, err)
	elastane, err := product.NewFabricCompositionItem("ELASTANE", 2000)
	require.NoError(t, err)

	t.Run("equality ignores order", func(t *testing.T) {
		a, err := product.NewFabricComposition([]product.FabricCompositionItem{cotton, elastane})
		require.NoError(t, err)
		b, err := product.NewFabricComposition([]product.FabricCompositionItem{elastane, cotton})
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("percentage bounds", func(t *testing.T) {
		_, err := product.NewFabricCompositionItem("SILK", product.MaxPercentage+1)
		assert.ErrorIs(t, err, product.ErrInvalidPercentage)
		_, err = product.NewFabricCompositionItem("SILK", -1)
		assert.ErrorIs(t, err, product.ErrInvalidPercentage)
		_, err = product.NewFabricCompositionItem("SILK", 0)
		assert.NoError(t, err)
	})

	t.Run("duplicate fabric type", func(t *testing.T) {
		_, err := product.NewFabricComposition([]product.FabricCompositionItem{cotton, cotton})
		assert.ErrorIs(t, err, product.ErrDuplicateFabricType)
	})
}

func TestNotification(t *testing.T) {
	_, err := product.NewProductNumberChanged(" ", "P-1")
	assert.ErrorIs(t, err, product.ErrEmptyProductID)

	n, err := product.NewLinkRenamed("p-1", product.LinkKey{Type: product.LinkTypePattern, ID: "X"}, " New ")
	require.NoError(t, err)
	assert.Equal(t, "p-1", n.ProductID())
	assert.Equal(t, product.KindLinkRenamed, n.Kind())
	assert.Equal(t, "New", n.Name)
}
