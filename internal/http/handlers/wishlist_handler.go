package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/catalog"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
	"minimalstore/internal/validate"
)

type WishlistHandler struct {
	Catalog *catalog.Catalog
	Store   *storage.Containers
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	wl, err := h.Store.Wishlist(sid)
	if err != nil {
		applog.Error(c, "wishlist.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo cargar la lista de deseos"})
	}
	return render(c, "wishlist", fiber.Map{"Items": wl.Items, "IsOpen": wl.IsOpen})
}

// Toggle flips a product in or out of the wishlist.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(404).SendString("unknown product")
	}

	wl, err := h.Store.Wishlist(sid)
	if err != nil {
		applog.Error(c, "wishlist.load.fail", err, map[string]any{"product": id})
		return c.Status(500).SendString("No se pudo guardar la lista de deseos")
	}
	added := wl.Toggle(p)
	if err := h.Store.SaveWishlist(sid, wl); err != nil {
		applog.Error(c, "wishlist.save.fail", err, map[string]any{"product": id})
		return c.Status(500).SendString("No se pudo guardar la lista de deseos")
	}

	applog.Audit(c, "wishlist.toggle", map[string]any{"product": id, "added": added})

	// redirect back to the product or the wishlist page
	back := c.Get("Referer")
	if back == "" {
		back = "/wishlist"
	}
	return c.Redirect(back)
}

func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	wl, err := h.Store.Wishlist(sid)
	if err != nil {
		applog.Error(c, "wishlist.load.fail", err, nil)
		return c.Status(500).SendString("No se pudo guardar la lista de deseos")
	}
	wl.Clear()
	if err := h.Store.SaveWishlist(sid, wl); err != nil {
		applog.Error(c, "wishlist.save.fail", err, nil)
		return c.Status(500).SendString("No se pudo guardar la lista de deseos")
	}
	applog.Audit(c, "wishlist.clear", nil)
	return c.Redirect("/wishlist")
}

// ToggleSidebar flips the side-panel flag and reports the new state.
func (h *WishlistHandler) ToggleSidebar(c *fiber.Ctx) error {
	sid := ensureSID(c)
	wl, err := h.Store.Wishlist(sid)
	if err != nil {
		applog.Error(c, "wishlist.load.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "wishlist unavailable"})
	}
	wl.ToggleSidebar()
	if err := h.Store.SaveWishlist(sid, wl); err != nil {
		applog.Error(c, "wishlist.save.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "wishlist unavailable"})
	}
	return c.JSON(fiber.Map{"isOpen": wl.IsOpen})
}
