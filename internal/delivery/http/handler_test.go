package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0aoarthur/sistema-delivery/internal/cart"
	"github.com/j0aoarthur/sistema-delivery/internal/catalog"
	"github.com/j0aoarthur/sistema-delivery/internal/identity"
	"github.com/j0aoarthur/sistema-delivery/internal/order"
	"github.com/j0aoarthur/sistema-delivery/internal/payment"
	"github.com/j0aoarthur/sistema-delivery/internal/repository/memory"
	"github.com/j0aoarthur/sistema-delivery/internal/session"
)

type nopPublisher struct{}

func (nopPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	carts := cart.NewService(cart.NewMemoryStore())
	cat := catalog.New()
	sessions := session.NewManager(identity.NewMockProvider(time.Millisecond), carts, nopPublisher{})
	orders := order.NewService(memory.NewOrderRepository(), carts, cat, payment.NewMockGateway(), nopPublisher{})

	mux := http.NewServeMux()
	NewHandler(sessions, cat, carts, orders).RegisterRoutes(mux)

	srv := httptest.NewServer(EnableCORS(mux))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "a@b.com",
		"password": "x",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state struct {
		Token string `json:"token"`
	}
	decode(t, resp, &state)
	require.NotEmpty(t, state.Token)
	return state.Token
}

func TestLogin_ValidationError(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email":    "not-an-email",
		"password": "x",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "Por favor, insira um email válido.", body["error"])
}

func TestRegister_PasswordTooShort(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"name":             "Ana",
		"email":            "ana@b.com",
		"password":         "12345",
		"confirm_password": "12345",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestCart_RequiresSession(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_FilterByCategory(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/products?category=Bebidas", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []struct {
		Category string `json:"category"`
	}
	decode(t, resp, &products)
	require.Len(t, products, 4)
	for _, p := range products {
		assert.Equal(t, "Bebidas", p.Category)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/products?category=Nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCartFlow_AddUpdateCheckout(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Add Coca-Cola once and Hambúrguer twice.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", token, map[string]string{"product_id": "1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", token, map[string]string{"product_id": "5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", token, map[string]string{"product_id": "5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cartBody struct {
		TotalItems int     `json:"total_items"`
		Subtotal   float64 `json:"subtotal"`
	}
	decode(t, resp, &cartBody)
	assert.Equal(t, 3, cartBody.TotalItems)
	assert.InDelta(t, 40.50, cartBody.Subtotal, 1e-9)

	// Remove the Coca-Cola line.
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/cart/items/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartBody)
	assert.Equal(t, 2, cartBody.TotalItems)
	assert.InDelta(t, 36.00, cartBody.Subtotal, 1e-9)

	// Checkout adds the delivery fee and clears the cart.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/checkout", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var summary struct {
		Subtotal    float64 `json:"subtotal"`
		DeliveryFee float64 `json:"delivery_fee"`
		Total       float64 `json:"total"`
	}
	decode(t, resp, &summary)
	assert.InDelta(t, 36.00, summary.Subtotal, 1e-9)
	assert.InDelta(t, 41.00, summary.Total, 1e-9)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cart", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &cartBody)
	assert.Equal(t, 0, cartBody.TotalItems)
}

func TestCart_UnavailableProductRejected(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Product 4 (Café Expresso) is unavailable.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", token, map[string]string{"product_id": "4"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func TestReorder_PopulatesCart(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/orders/PED-002/reorder", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		RestoredLines int `json:"restored_lines"`
		Cart          struct {
			TotalItems int `json:"total_items"`
		} `json:"cart"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 2, body.RestoredLines)
	assert.Equal(t, 2, body.Cart.TotalItems)
}

func TestView_NavigationRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/view/category", token, map[string]string{"category": "Lanches"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav struct {
		Screen           string `json:"screen"`
		MenuView         string `json:"menu_view"`
		SelectedCategory string `json:"selected_category"`
	}
	decode(t, resp, &nav)
	assert.Equal(t, "menu", nav.Screen)
	assert.Equal(t, "Lanches", nav.SelectedCategory)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/view/navigate", token, map[string]string{"view": "orders"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &nav)
	assert.Equal(t, "orders", nav.MenuView)

	// Category selection survives inner navigation.
	assert.Equal(t, "Lanches", nav.SelectedCategory)
}

func TestView_AnonymousSeesLoginScreen(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/view", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nav struct {
		Screen string `json:"screen"`
	}
	decode(t, resp, &nav)
	assert.Equal(t, "login", nav.Screen)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProfile_UpdateRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/profile", token, map[string]string{
		"name":    "João Arthur",
		"email":   "joao@b.com",
		"phone":   "(11) 98888-7777",
		"address": "Av. Paulista, 1000 - São Paulo, SP",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decode(t, resp, &user)
	assert.Equal(t, "João Arthur", user.Name)
	assert.Equal(t, "joao@b.com", user.Email)
}
