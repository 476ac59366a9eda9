package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"

	"minimalstore/internal/domain"
)

func product(id int, name string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: decimal.NewFromInt(20), InStock: true}
}

func TestToggleAddsThenRemoves(t *testing.T) {
	var w Wishlist
	p := product(1, "Gorra Minimal")

	if added := w.Toggle(p); !added {
		t.Fatal("first toggle should add")
	}
	if !w.Contains(1) || len(w.Items) != 1 {
		t.Fatalf("bad state after add: %+v", w.Items)
	}

	if added := w.Toggle(p); added {
		t.Fatal("second toggle should remove")
	}
	if w.Contains(1) || len(w.Items) != 0 {
		t.Fatalf("bad state after remove: %+v", w.Items)
	}
}

func TestToggleKeysByID(t *testing.T) {
	var w Wishlist
	w.Toggle(product(1, "Gorra Minimal"))
	w.Toggle(product(2, "Mochila Urbana"))

	// same id, different snapshot still toggles off
	w.Toggle(product(1, "Gorra Minimal (renombrada)"))

	if len(w.Items) != 1 || w.Items[0].ID != 2 {
		t.Fatalf("want only product 2 left, got %+v", w.Items)
	}
}

func TestClear(t *testing.T) {
	var w Wishlist
	w.Toggle(product(1, "Gorra"))
	w.Toggle(product(2, "Mochila"))

	w.Clear()
	if len(w.Items) != 0 {
		t.Fatalf("want empty wishlist, got %d", len(w.Items))
	}
}

func TestToggleSidebar(t *testing.T) {
	var w Wishlist
	w.ToggleSidebar()
	if !w.IsOpen {
		t.Fatal("sidebar should be open")
	}
	w.ToggleSidebar()
	if w.IsOpen {
		t.Fatal("sidebar should be closed")
	}
}
