package domain

import "github.com/shopspring/decimal"

// PriceModifiers holds additive deltas applied on top of a product's base
// price when a specific size or color variant is selected.
type PriceModifiers struct {
	Size  map[string]decimal.Decimal `json:"size,omitempty"`
	Color map[string]decimal.Decimal `json:"color,omitempty"`
}

type Product struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Image           string          `json:"image"`
	Images          []string        `json:"images,omitempty"`
	Description     string          `json:"description,omitempty"`
	Discount        int             `json:"discount,omitempty"` // percent off, display only
	IsNew           bool            `json:"isNew,omitempty"`
	InStock         bool            `json:"inStock"`
	AvailableSizes  []string        `json:"availableSizes,omitempty"`
	AvailableColors []string        `json:"availableColors,omitempty"`
	PriceModifiers  PriceModifiers  `json:"priceModifiers,omitempty"`
	Rating          float64         `json:"rating,omitempty"`
	Reviews         int             `json:"reviews,omitempty"`
}

// VariantPrice returns the base price plus any size/color modifier deltas.
// Listings always show the base price; only the detail view applies this.
func (p Product) VariantPrice(size, color string) decimal.Decimal {
	price := p.Price
	if d, ok := p.PriceModifiers.Size[size]; ok {
		price = price.Add(d)
	}
	if d, ok := p.PriceModifiers.Color[color]; ok {
		price = price.Add(d)
	}
	return price
}

func (p Product) HasSizes() bool { return len(p.AvailableSizes) > 0 }

// CartItem is a snapshot of a product at add time, never a live reference.
type CartItem struct {
	Product
	CartItemID string `json:"cartItemId"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size,omitempty"`
	Color      string `json:"color,omitempty"`
}

// Subtotal is the snapshot price times quantity.
func (it CartItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type BlogPost struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content,omitempty"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Author   string `json:"author"`
}
