package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

func TestCatalog_ByCategoryFiltersAndPreservesOrder(t *testing.T) {
	c := New()

	bebidas := c.ByCategory(entity.CategoryBebidas)
	require.Len(t, bebidas, 4)
	assert.Equal(t, "Coca-Cola 350ml", bebidas[0].Name)
	for _, p := range bebidas {
		assert.Equal(t, entity.CategoryBebidas, p.Category)
	}

	assert.Len(t, c.ByCategory(entity.CategoryLanches), 4)
	assert.Len(t, c.ByCategory(entity.CategorySobremesas), 3)
	assert.Len(t, c.ByCategory(entity.CategoryPratosPrincipais), 3)
}

func TestCatalog_ByCategoryDoesNotMutate(t *testing.T) {
	c := New()

	before := len(c.All())
	_ = c.ByCategory(entity.CategoryBebidas)
	_ = c.ByCategory(entity.Category("Inexistente"))
	assert.Len(t, c.All(), before)
}

func TestCatalog_ByID(t *testing.T) {
	c := New()

	p, ok := c.ByID("5")
	require.True(t, ok)
	assert.Equal(t, "Hambúrguer Clássico", p.Name)
	assert.InDelta(t, 18.00, p.Price, 1e-9)

	_, ok = c.ByID("999")
	assert.False(t, ok)
}

func TestCatalog_EspressoUnavailable(t *testing.T) {
	c := New()

	p, ok := c.ByID("4")
	require.True(t, ok)
	assert.False(t, p.Available)
}

func TestCatalog_CategoriesMatchFixedSet(t *testing.T) {
	c := New()

	infos := c.Categories()
	require.Len(t, infos, 4)

	names := make([]entity.Category, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, entity.Categories(), names)
}
