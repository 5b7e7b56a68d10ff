package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

func TestDefaultNav(t *testing.T) {
	n := DefaultNav()

	assert.Equal(t, ScreenLogin, n.Screen)
	assert.Equal(t, ViewHome, n.MenuView)
	assert.False(t, n.CartOpen)
	assert.Equal(t, entity.CategoryBebidas, n.SelectedCategory)
}

func TestNav_LoginRegisterToggle(t *testing.T) {
	n := DefaultNav()

	n.ShowRegister()
	assert.Equal(t, ScreenRegister, n.Screen)

	n.ShowLogin()
	assert.Equal(t, ScreenLogin, n.Screen)
}

func TestNav_ToggleIgnoredInsideMenu(t *testing.T) {
	n := DefaultNav()
	n.EnterMenu()

	n.ShowRegister()
	assert.Equal(t, ScreenMenu, n.Screen)
}

func TestNav_EnterMenuResetsInnerState(t *testing.T) {
	n := DefaultNav()
	n.EnterMenu()
	n.SelectView(ViewOrders)
	n.SelectCategory(entity.CategoryLanches)
	n.SetCartOpen(true)

	n.EnterMenu()
	assert.Equal(t, ViewHome, n.MenuView)
	assert.Equal(t, entity.CategoryBebidas, n.SelectedCategory)
	assert.False(t, n.CartOpen)
}

func TestNav_SelectViewTransitionsAreTotal(t *testing.T) {
	n := DefaultNav()
	n.EnterMenu()

	n.SelectView(ViewProfile)
	assert.Equal(t, ViewProfile, n.MenuView)

	// Unknown views leave the state unchanged rather than failing.
	n.SelectView(MenuView("settings"))
	assert.Equal(t, ViewProfile, n.MenuView)
}

func TestNav_SelectCategoryIgnoresUnknown(t *testing.T) {
	n := DefaultNav()
	n.EnterMenu()

	n.SelectCategory(entity.CategorySobremesas)
	assert.Equal(t, entity.CategorySobremesas, n.SelectedCategory)

	n.SelectCategory(entity.Category("Eletrônicos"))
	assert.Equal(t, entity.CategorySobremesas, n.SelectedCategory)
}

func TestNav_CartPanelIsOrthogonal(t *testing.T) {
	n := DefaultNav()
	n.EnterMenu()

	n.SetCartOpen(true)
	n.SelectView(ViewOrders)
	n.SelectCategory(entity.CategoryLanches)

	assert.True(t, n.CartOpen)
	assert.Equal(t, ViewOrders, n.MenuView)
}

func TestNav_ResetRestoresDefaults(t *testing.T) {
	n := DefaultNav()
	n.EnterMenu()
	n.SelectView(ViewOrders)
	n.SetCartOpen(true)

	n.Reset()
	assert.Equal(t, DefaultNav(), n)
}
