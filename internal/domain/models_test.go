package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestVariantPrice(t *testing.T) {
	p := Product{
		Price: decimal.RequireFromString("25"),
		PriceModifiers: PriceModifiers{
			Size:  map[string]decimal.Decimal{"XL": decimal.RequireFromString("5")},
			Color: map[string]decimal.Decimal{"Negro": decimal.RequireFromString("2")},
		},
	}

	cases := []struct {
		size, color string
		want        string
	}{
		{"", "", "25"},
		{"S", "", "25"}, // no modifier for S
		{"XL", "", "30"},
		{"", "Negro", "27"},
		{"XL", "Negro", "32"},
	}
	for _, tc := range cases {
		got := p.VariantPrice(tc.size, tc.color)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("VariantPrice(%q,%q) = %s, want %s", tc.size, tc.color, got, tc.want)
		}
	}
}

func TestVariantPriceWithoutModifiers(t *testing.T) {
	p := Product{Price: decimal.RequireFromString("55")}
	if got := p.VariantPrice("XL", "Negro"); !got.Equal(p.Price) {
		t.Fatalf("want base price, got %s", got)
	}
}

func TestCartItemSubtotal(t *testing.T) {
	it := CartItem{
		Product:  Product{Price: decimal.RequireFromString("12.50")},
		Quantity: 3,
	}
	if got := it.Subtotal(); !got.Equal(decimal.RequireFromString("37.50")) {
		t.Fatalf("want 37.50, got %s", got)
	}
}

func TestProductJSONKeys(t *testing.T) {
	p := Product{ID: 1, Name: "Camiseta", Price: decimal.RequireFromString("25"), IsNew: true, InStock: true}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "name", "price", "isNew", "inStock"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, b)
		}
	}
	if _, ok := m["images"]; ok {
		t.Error("empty optional fields must be omitted")
	}
}
