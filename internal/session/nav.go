package session

import (
	"github.com/j0aoarthur/sistema-delivery/internal/entity"
)

// Screen is the top-level navigation state. MainMenu is reachable only while
// a session exists.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenMenu     Screen = "menu"
)

// MenuView is the inner navigation state, active only while on the menu.
type MenuView string

const (
	ViewHome    MenuView = "home"
	ViewProfile MenuView = "profile"
	ViewOrders  MenuView = "orders"
)

// Valid reports whether v is one of the fixed menu views.
func (v MenuView) Valid() bool {
	switch v {
	case ViewHome, ViewProfile, ViewOrders:
		return true
	}
	return false
}

// NavState is the two-level navigation state machine plus the orthogonal
// cart-panel flag and selected category. All transitions are total: invalid
// inputs leave the state unchanged.
type NavState struct {
	Screen           Screen          `json:"screen"`
	MenuView         MenuView        `json:"menu_view"`
	CartOpen         bool            `json:"cart_open"`
	SelectedCategory entity.Category `json:"selected_category"`
}

// DefaultNav is the state at startup and after logout.
func DefaultNav() NavState {
	return NavState{
		Screen:           ScreenLogin,
		MenuView:         ViewHome,
		CartOpen:         false,
		SelectedCategory: entity.DefaultCategory,
	}
}

// ShowLogin moves to the login screen when no session exists.
func (n *NavState) ShowLogin() {
	if n.Screen == ScreenRegister {
		n.Screen = ScreenLogin
	}
}

// ShowRegister moves to the registration screen when no session exists.
func (n *NavState) ShowRegister() {
	if n.Screen == ScreenLogin {
		n.Screen = ScreenRegister
	}
}

// EnterMenu transitions to the menu after a successful login or
// registration, with the inner state reset to its defaults.
func (n *NavState) EnterMenu() {
	n.Screen = ScreenMenu
	n.MenuView = ViewHome
	n.CartOpen = false
	n.SelectedCategory = entity.DefaultCategory
}

// SelectView switches between the menu's inner screens. Switching views does
// not affect cart contents or the selected category.
func (n *NavState) SelectView(v MenuView) {
	if n.Screen == ScreenMenu && v.Valid() {
		n.MenuView = v
	}
}

// SelectCategory changes the category shown on the home view.
func (n *NavState) SelectCategory(c entity.Category) {
	if n.Screen == ScreenMenu && c.Valid() {
		n.SelectedCategory = c
	}
}

// SetCartOpen toggles the cart panel independently of the other navigation
// state.
func (n *NavState) SetCartOpen(open bool) {
	if n.Screen == ScreenMenu {
		n.CartOpen = open
	}
}

// Reset returns to the defaults. Called on logout.
func (n *NavState) Reset() {
	*n = DefaultNav()
}
