package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"minimalstore/internal/domain"
)

// PageSize is the number of items revealed per "load more" step.
const PageSize = 8

// CategoryAll is the sentinel meaning no category restriction.
const CategoryAll = "all"

const (
	SortNone = ""     // insertion order
	SortAsc  = "asc"  // price ascending
	SortDesc = "desc" // price descending
)

// Filter is the full query state of a listing view. All predicates are
// AND-combined; empty size/color selections mean "no restriction".
type Filter struct {
	Category     string
	Search       string
	Sort         string
	Sizes        []string
	Colors       []string
	MinPrice     decimal.Decimal
	MaxPrice     decimal.NullDecimal // invalid = unbounded
	DiscountOnly bool
	InStockOnly  bool
	NewOnly      bool
	Visible      int // pagination cursor: count of items revealed
}

func NewFilter() Filter {
	return Filter{Category: CategoryAll, MinPrice: decimal.Zero, Visible: PageSize}
}

// ResetCursor returns the cursor to the first page. Every filter mutation
// must call this.
func (f *Filter) ResetCursor() { f.Visible = PageSize }

func (f *Filter) LoadMore() { f.Visible += PageSize }

// HasActive reports whether any predicate deviates from its default.
func (f Filter) HasActive() bool {
	return f.Category != CategoryAll ||
		f.Search != "" ||
		len(f.Sizes) > 0 ||
		len(f.Colors) > 0 ||
		f.MinPrice.IsPositive() ||
		f.MaxPrice.Valid ||
		f.DiscountOnly ||
		f.InStockOnly ||
		f.NewOnly
}

// Matches evaluates the conjunctive predicate chain for one product.
func (f Filter) Matches(p domain.Product) bool {
	if f.Category != CategoryAll && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if p.Price.LessThan(f.MinPrice) {
		return false
	}
	if f.MaxPrice.Valid && p.Price.GreaterThan(f.MaxPrice.Decimal) {
		return false
	}
	if f.DiscountOnly && p.Discount <= 0 {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.NewOnly && !p.IsNew {
		return false
	}
	if !intersects(p.AvailableSizes, f.Sizes) {
		return false
	}
	if !intersects(p.AvailableColors, f.Colors) {
		return false
	}
	return true
}

// Apply filters then sorts the catalog order. The sort is stable: equal
// prices keep their relative catalog position.
func (f Filter) Apply(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	switch f.Sort {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}

// Page reveals the first Visible items of an already-filtered list.
func (f Filter) Page(filtered []domain.Product) []domain.Product {
	n := f.Visible
	if n <= 0 {
		n = PageSize
	}
	if n > len(filtered) {
		n = len(filtered)
	}
	return filtered[:n]
}

// intersects is vacuously true for an empty selection; otherwise at least
// one available value must be selected.
func intersects(available, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, a := range available {
		for _, s := range selected {
			if a == s {
				return true
			}
		}
	}
	return false
}
