package catalog

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// URL parameter names for the listing view. Absence means default; a filter
// at its default value is omitted on serialization to keep URLs minimal.
const (
	paramCategory = "category"
	paramSearch   = "search"
	paramSort     = "sort"
	paramSizes    = "sizes"
	paramColors   = "colors"
	paramMinPrice = "minPrice"
	paramMaxPrice = "maxPrice"
	paramDiscount = "discount"
	paramStock    = "stock"
	paramIsNew    = "isNew"
)

// ParseQuery reconstructs a Filter from a query string. Malformed numeric
// values fall back to their defaults; unknown sort keys mean insertion
// order. The pagination cursor is never carried in the URL.
func ParseQuery(v url.Values) Filter {
	f := NewFilter()
	if c := v.Get(paramCategory); c != "" {
		f.Category = c
	}
	f.Search = v.Get(paramSearch)
	switch v.Get(paramSort) {
	case SortAsc:
		f.Sort = SortAsc
	case SortDesc:
		f.Sort = SortDesc
	}
	f.Sizes = splitList(v.Get(paramSizes))
	f.Colors = splitList(v.Get(paramColors))
	if raw := v.Get(paramMinPrice); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil && d.IsPositive() {
			f.MinPrice = d
		}
	}
	if raw := v.Get(paramMaxPrice); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			f.MaxPrice = decimal.NewNullDecimal(d)
		}
	}
	f.DiscountOnly = v.Get(paramDiscount) == "true"
	f.InStockOnly = v.Get(paramStock) == "true"
	f.NewOnly = v.Get(paramIsNew) == "true"
	return f
}

// Query serializes the non-default fields to URL parameters. List-valued
// fields join with commas.
func (f Filter) Query() url.Values {
	v := url.Values{}
	if f.Category != CategoryAll {
		v.Set(paramCategory, f.Category)
	}
	if f.Search != "" {
		v.Set(paramSearch, f.Search)
	}
	if f.Sort != SortNone {
		v.Set(paramSort, f.Sort)
	}
	if len(f.Sizes) > 0 {
		v.Set(paramSizes, strings.Join(f.Sizes, ","))
	}
	if len(f.Colors) > 0 {
		v.Set(paramColors, strings.Join(f.Colors, ","))
	}
	if f.MinPrice.IsPositive() {
		v.Set(paramMinPrice, f.MinPrice.String())
	}
	if f.MaxPrice.Valid {
		v.Set(paramMaxPrice, f.MaxPrice.Decimal.String())
	}
	if f.DiscountOnly {
		v.Set(paramDiscount, "true")
	}
	if f.InStockOnly {
		v.Set(paramStock, "true")
	}
	if f.NewOnly {
		v.Set(paramIsNew, "true")
	}
	return v
}

// Encode renders the filter as a canonical query string.
func (f Filter) Encode() string { return f.Query().Encode() }

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
