package entity

// CartLine is one product entry in the cart. Name, price and category are
// snapshotted from the product when it is first added.
type CartLine struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Category  Category `json:"category"`
	Quantity  int      `json:"quantity"`
}

// Cart holds the lines of a shopping cart in insertion order, at most one
// line per product ID. Quantity is always >= 1; setting it to zero removes
// the line.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// NewCart creates an empty cart.
func NewCart(id string) *Cart {
	return &Cart{ID: id}
}

func (c *Cart) find(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts qty units of p into the cart, merging into the existing line if
// the product is already present.
func (c *Cart) Add(p Product, qty int) {
	if qty <= 0 {
		return
	}
	if i := c.find(p.ID); i >= 0 {
		c.Lines[i].Quantity += qty
		return
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Quantity:  qty,
	})
}

// AddItem adds a single unit of p.
func (c *Cart) AddItem(p Product) {
	c.Add(p, 1)
}

// RemoveItem deletes the line for productID. Removing an absent product is
// a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	if i := c.find(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// SetQuantity replaces the stored quantity for productID. Zero removes the
// line entirely; negative quantities are rejected.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return NewValidationError("quantity", "A quantidade não pode ser negativa.")
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return nil
	}
	if i := c.find(productID); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
	return nil
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	var total int
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of price*quantity across all lines. It never includes
// the delivery fee, which belongs to the checkout summary.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	cp := &Cart{ID: c.ID}
	if len(c.Lines) > 0 {
		cp.Lines = make([]CartLine, len(c.Lines))
		copy(cp.Lines, c.Lines)
	}
	return cp
}
