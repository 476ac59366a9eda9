// Package wishlist is a toggle-set of favorited products: no quantities, no
// variant dimension, presence keyed by product id.
package wishlist

import "minimalstore/internal/domain"

type Wishlist struct {
	Items  []domain.Product `json:"items"`
	IsOpen bool             `json:"isOpen"`
}

// Toggle flips the presence of a product and reports whether it was added.
// This is a toggle, not a set-add: calling twice with the same product
// restores the previous state.
func (w *Wishlist) Toggle(p domain.Product) bool {
	for i := range w.Items {
		if w.Items[i].ID == p.ID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return false
		}
	}
	w.Items = append(w.Items, p)
	return true
}

func (w *Wishlist) Contains(productID int) bool {
	for _, p := range w.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Clear() { w.Items = nil }

// ToggleSidebar flips the side-panel flag.
func (w *Wishlist) ToggleSidebar() { w.IsOpen = !w.IsOpen }
