package entity

import (
	"time"
)

// Category groups products in the storefront menu.
type Category string

const (
	CategoryBebidas          Category = "Bebidas"
	CategoryLanches          Category = "Lanches"
	CategorySobremesas       Category = "Sobremesas"
	CategoryPratosPrincipais Category = "Pratos Principais"
)

// DefaultCategory is the menu selection right after login.
const DefaultCategory = CategoryBebidas

// Categories lists every category in menu order.
func Categories() []Category {
	return []Category{
		CategoryBebidas,
		CategoryLanches,
		CategorySobremesas,
		CategoryPratosPrincipais,
	}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBebidas, CategoryLanches, CategorySobremesas, CategoryPratosPrincipais:
		return true
	}
	return false
}

// Product represents a product in the store. Products are immutable
// reference data seeded at startup.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Category    Category `json:"category"`
	Available   bool     `json:"available"`
}

// User is the profile of an authenticated customer.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is a line item within an order, snapshotted at order time.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents a customer order.
type Order struct {
	ID         string      `json:"id"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}
