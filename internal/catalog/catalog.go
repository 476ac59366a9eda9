package catalog

import (
	"github.com/shopspring/decimal"

	"minimalstore/internal/domain"
)

// Filter vocabularies surfaced by the listing view.
var (
	Categories = []string{"Camisetas", "Pantalones", "Accesorios"}
	Sizes      = []string{"S", "M", "L", "XL"}
	Colors     = []string{"Negro", "Blanco", "Beige"}
)

// Catalog is the ordered, read-only product list. Built once at startup;
// never mutated afterwards.
type Catalog struct {
	products []domain.Product
}

func New(products []domain.Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the demo catalog.
func Default() *Catalog { return New(demoProducts()) }

// Products returns the catalog in insertion order. Callers must not mutate
// the returned slice.
func (c *Catalog) Products() []domain.Product { return c.products }

func (c *Catalog) Get(id int) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Related returns up to n products sharing a category with p, excluding p
// itself.
func (c *Catalog) Related(p domain.Product, n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for _, q := range c.products {
		if q.Category == p.Category && q.ID != p.ID {
			out = append(out, q)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// MaxPrice is the highest base price in the catalog, used to bound the
// price-range control.
func (c *Catalog) MaxPrice() decimal.Decimal {
	max := decimal.Zero
	for _, p := range c.products {
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return max
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func demoProducts() []domain.Product {
	return []domain.Product{
		{
			ID:              1,
			Name:            "Camiseta Básica White",
			Price:           dec("25"),
			Category:        "Camisetas",
			AvailableSizes:  []string{"S", "M", "L", "XL"},
			AvailableColors: []string{"Blanco", "Negro"},
			InStock:         true,
			IsNew:           true,
			Image:           "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=800&q=80",
			PriceModifiers: domain.PriceModifiers{
				Size:  map[string]decimal.Decimal{"XL": dec("5")},
				Color: map[string]decimal.Decimal{"Negro": dec("2")},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1562157873-818bc0726f68?auto=format&fit=crop&w=800&q=80",
			},
		},
		{
			ID:              2,
			Name:            "Pantalón Chino Beige",
			Price:           dec("55"),
			Category:        "Pantalones",
			AvailableSizes:  []string{"M", "L", "XL"},
			AvailableColors: []string{"Beige"},
			InStock:         true,
			Discount:        20,
			Image:           "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1473966968600-fa801b869a1a?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?auto=format&fit=crop&w=800&q=80",
			},
		},
		{
			ID:              3,
			Name:            "Camiseta Oversize Black",
			Price:           dec("30"),
			Category:        "Camisetas",
			AvailableSizes:  []string{"S", "XL"},
			AvailableColors: []string{"Negro"},
			InStock:         true,
			Image:           "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&w=800&q=80",
			},
		},
		{
			ID:              4,
			Name:            "Gorra Minimal",
			Price:           dec("20"),
			Category:        "Accesorios",
			AvailableColors: []string{"Negro", "Beige", "Blanco"},
			InStock:         false,
			IsNew:           true,
			Image:           "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:              5,
			Name:            "Jeans Slim Fit",
			Price:           dec("60"),
			Category:        "Pantalones",
			AvailableSizes:  []string{"S", "M", "L", "XL"},
			AvailableColors: []string{"Negro", "Blanco"},
			InStock:         true,
			Image:           "https://images.unsplash.com/photo-1598554747436-c9293d6a588f?auto=format&fit=crop&w=387&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1542272454315-4c01d7abdf4a?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1475178626620-a4d074967452?auto=format&fit=crop&w=800&q=80",
			},
		},
		{
			ID:              6,
			Name:            "Calcetines Pack",
			Price:           dec("15"),
			Category:        "Accesorios",
			AvailableSizes:  []string{"M", "L"},
			AvailableColors: []string{"Blanco", "Beige"},
			InStock:         true,
			Image:           "https://images.unsplash.com/photo-1552902865-b72c031ac5ea?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:              7,
			Name:            "Chaqueta Denim",
			Price:           dec("85"),
			Category:        "Chaquetas",
			AvailableSizes:  []string{"S", "M", "L"},
			AvailableColors: []string{"Azul"},
			InStock:         true,
			Image:           "https://images.unsplash.com/photo-1614699745279-2c61bd9d46b5?auto=format&fit=crop&w=465&q=80",
		},
		{
			ID:              8,
			Name:            "Mochila Urbana",
			Price:           dec("45"),
			Category:        "Accesorios",
			AvailableColors: []string{"Negro", "Gris"},
			InStock:         true,
			Image:           "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=800&q=80",
		},
	}
}
