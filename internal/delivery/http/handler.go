// Package http exposes the storefront state machines as a JSON API. The
// rendering layer is an external collaborator: it displays the state
// returned here and forwards user intents as requests.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/j0aoarthur/sistema-delivery/internal/cart"
	"github.com/j0aoarthur/sistema-delivery/internal/catalog"
	"github.com/j0aoarthur/sistema-delivery/internal/entity"
	"github.com/j0aoarthur/sistema-delivery/internal/order"
	"github.com/j0aoarthur/sistema-delivery/internal/session"
)

// Handler handles HTTP requests for the application.
type Handler struct {
	sessions *session.Manager
	catalog  *catalog.Catalog
	carts    *cart.Service
	orders   *order.Service
}

func NewHandler(sessions *session.Manager, cat *catalog.Catalog, carts *cart.Service, orders *order.Service) *Handler {
	return &Handler{
		sessions: sessions,
		catalog:  cat,
		carts:    carts,
		orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)

	mux.HandleFunc("GET /api/categories", h.handleGetCategories)
	mux.HandleFunc("GET /api/products", h.handleGetProducts)

	mux.HandleFunc("GET /api/cart", h.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", h.handleAddCartItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.handleSetCartQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.handleRemoveCartItem)
	mux.HandleFunc("POST /api/checkout", h.handleCheckout)

	mux.HandleFunc("GET /api/orders", h.handleGetOrders)
	mux.HandleFunc("POST /api/orders/{id}/reorder", h.handleReorder)

	mux.HandleFunc("GET /api/profile", h.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", h.handleUpdateProfile)

	mux.HandleFunc("GET /api/view", h.handleGetView)
	mux.HandleFunc("POST /api/view/navigate", h.handleNavigate)
	mux.HandleFunc("POST /api/view/category", h.handleSelectCategory)
	mux.HandleFunc("POST /api/view/cart", h.handleSetCartOpen)
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": verr.Message, "field": verr.Field})
		return
	}
	slog.Error("Request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// requireSession resolves the bearer token to a session, writing 401 when it
// is missing or unknown.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (session.State, bool) {
	state, ok := h.sessions.Get(bearerToken(r))
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "sessão inválida ou expirada"})
		return session.State{}, false
	}
	return state, true
}

type cartResponse struct {
	Cart       *entity.Cart `json:"cart"`
	TotalItems int          `json:"total_items"`
	Subtotal   float64      `json:"subtotal"`
}

func newCartResponse(c *entity.Cart) cartResponse {
	return cartResponse{Cart: c, TotalItems: c.TotalItems(), Subtotal: c.Subtotal()}
}

// --- auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.sessions.Register(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	if err := h.sessions.Logout(r.Context(), state.Token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"screen": string(session.ScreenLogin)})
}

// --- catalog ---

func (h *Handler) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *Handler) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("category"); raw != "" {
		cat := entity.Category(raw)
		if !cat.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "categoria desconhecida"})
			return
		}
		writeJSON(w, http.StatusOK, h.catalog.ByCategory(cat))
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.All())
}

// --- cart ---

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	c, err := h.carts.Get(r.Context(), state.CartID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, found := h.catalog.ByID(req.ProductID)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "produto não encontrado"})
		return
	}

	c, err := h.carts.AddItem(r.Context(), state.CartID, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := h.carts.SetQuantity(r.Context(), state.CartID, r.PathValue("id"), req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	c, err := h.carts.RemoveItem(r.Context(), state.CartID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	summary, err := h.orders.Checkout(r.Context(), state.CartID)
	if err != nil {
		writeError(w, err)
		return
	}

	// Closing the panel mirrors the storefront closing the cart sidebar
	// after a successful checkout.
	h.sessions.SetCartOpen(state.Token, false)

	writeJSON(w, http.StatusCreated, summary)
}

// --- orders ---

func (h *Handler) handleGetOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}
	orders, err := h.orders.History(r.Context(), 50)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) handleReorder(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	restored, err := h.orders.Reorder(r.Context(), state.CartID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.carts.Get(r.Context(), state.CartID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"restored_lines": restored,
		"cart":           newCartResponse(c),
	})
}

// --- profile ---

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.User)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var user entity.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.sessions.UpdateProfile(state.Token, user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated.User)
}

// --- view ---

func (h *Handler) handleGetView(w http.ResponseWriter, r *http.Request) {
	state, ok := h.sessions.Get(bearerToken(r))
	if !ok {
		// No session: the only reachable screen is the login form.
		writeJSON(w, http.StatusOK, session.DefaultNav())
		return
	}

	c, err := h.carts.Get(r.Context(), state.CartID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"nav":         state.Nav,
		"user":        state.User,
		"total_items": c.TotalItems(),
	})
}

type navigateRequest struct {
	View string `json:"view"`
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, _ := h.sessions.Navigate(state.Token, session.MenuView(req.View))
	writeJSON(w, http.StatusOK, updated.Nav)
}

type selectCategoryRequest struct {
	Category string `json:"category"`
}

func (h *Handler) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req selectCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, _ := h.sessions.SelectCategory(state.Token, entity.Category(req.Category))
	writeJSON(w, http.StatusOK, updated.Nav)
}

type setCartOpenRequest struct {
	Open bool `json:"open"`
}

func (h *Handler) handleSetCartOpen(w http.ResponseWriter, r *http.Request) {
	state, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req setCartOpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, _ := h.sessions.SetCartOpen(state.Token, req.Open)
	writeJSON(w, http.StatusOK, updated.Nav)
}

// EnableCORS is a middleware to allow the storefront frontend to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
