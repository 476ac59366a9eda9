package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/catalog"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
	"minimalstore/internal/validate"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
	Store   *storage.Containers
}

// List renders the listing view. The full filter state round-trips through
// the query string, so the URL alone reconstructs the view.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		values = url.Values{}
	}
	f := catalog.ParseQuery(values)

	if raw := f.Search; raw != "" {
		if _, ok := validate.Q(raw); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "search", "value": raw})
			f.Search = ""
		}
	}

	filtered := f.Apply(h.Catalog.Products())
	visible := f.Page(filtered)

	return render(c, "products", fiber.Map{
		"Products":   visible,
		"Total":      len(filtered),
		"Shown":      len(visible),
		"Filter":     f,
		"Query":      f.Encode(),
		"HasFilters": f.HasActive(),
		"Categories": catalog.Categories,
		"Sizes":      catalog.Sizes,
		"Colors":     catalog.Colors,
		"MaxPrice":   h.Catalog.MaxPrice(),
	})
}

// Detail renders one product with its variant-adjusted price. Listings show
// the base price; only this view applies the size/color modifiers.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Producto no encontrado"})
	}

	size := c.Query("size")
	color := c.Query("color")

	sid := ensureSID(c)
	wl, err := h.Store.Wishlist(sid)
	if err != nil {
		applog.Error(c, "wishlist.load.fail", err, nil)
	}

	return render(c, "product", fiber.Map{
		"P":            p,
		"Size":         size,
		"Color":        color,
		"CurrentPrice": p.VariantPrice(size, color),
		"InWishlist":   wl.Contains(p.ID),
		"Related":      h.Catalog.Related(p, 4),
	})
}
