// Package cart holds the authoritative list of items a session intends to
// purchase. Operations never fail: invalid input degrades to a no-op, since
// this is interactive UI state rather than a validated transactional store.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"minimalstore/internal/domain"
)

// Cart is a whole-container snapshot: the struct marshals verbatim into the
// session snapshot store and restores the same way.
type Cart struct {
	Items  []domain.CartItem `json:"items"`
	IsOpen bool              `json:"isOpen"`
}

// ItemID derives the composite line key {productId}[-{size}][-{color}].
// The color suffix applies whether or not a size is present.
func ItemID(productID int, size, color string) string {
	id := fmt.Sprintf("%d", productID)
	if size != "" {
		id += "-" + size
	}
	if color != "" {
		id += "-" + color
	}
	return id
}

// AddItem merges into an existing line when the product, size and color all
// match; otherwise it appends a new line with quantity 1. The product is
// captured by value, including any variant-adjusted price the caller already
// computed via VariantPrice.
func (c *Cart) AddItem(p domain.Product, size, color string) {
	id := ItemID(p.ID, size, color)
	for i := range c.Items {
		if c.Items[i].CartItemID == id {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, domain.CartItem{
		Product:    p,
		CartItemID: id,
		Quantity:   1,
		Size:       size,
		Color:      color,
	})
}

// RemoveItem deletes the matching line. Removing an unknown id is a no-op.
func (c *Cart) RemoveItem(cartItemID string) {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets a line's quantity exactly. Quantities below 1 are
// rejected as a no-op; removal goes through RemoveItem, never through a
// zero quantity.
func (c *Cart) UpdateQuantity(cartItemID string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() { c.Items = nil }

// Toggle flips the side-panel flag. Presentation state only.
func (c *Cart) Toggle() { c.IsOpen = !c.IsOpen }

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price*quantity across all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
