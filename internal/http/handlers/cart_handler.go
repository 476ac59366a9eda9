package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/cart"
	"minimalstore/internal/catalog"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
	"minimalstore/internal/validate"
)

type CartHandler struct {
	Catalog *catalog.Catalog
	Store   *storage.Containers
}

func (h *CartHandler) load(c *fiber.Ctx) (string, cart.Cart, error) {
	sid := ensureSID(c)
	ct, err := h.Store.Cart(sid)
	return sid, ct, err
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	_, ct, err := h.load(c)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo cargar el carrito"})
	}
	return render(c, "cart", fiber.Map{
		"Items":      ct.Items,
		"TotalItems": ct.TotalItems(),
		"TotalPrice": ct.TotalPrice(),
	})
}

// Add puts one unit of a product variant in the cart. The variant-adjusted
// price is computed here, before the snapshot is captured.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid, ct, err := h.load(c)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).SendString("No se pudo cargar el carrito")
	}

	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, ok := h.Catalog.Get(id)
	if !ok {
		return c.Status(404).SendString("unknown product")
	}

	size := c.FormValue("size")
	color := c.FormValue("color")
	p.Price = p.VariantPrice(size, color)

	ct.AddItem(p, size, color)
	if err := h.Store.SaveCart(sid, ct); err != nil {
		applog.Error(c, "cart.save.fail", err, map[string]any{"product": id})
		return c.Status(500).SendString("No se pudo guardar el carrito")
	}
	applog.Audit(c, "cart.add", map[string]any{"product": id, "size": size, "color": color})
	return c.Redirect("/cart")
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sid, ct, err := h.load(c)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).SendString("No se pudo cargar el carrito")
	}

	itemID := c.FormValue("cartItemId")
	if itemID == "" {
		return c.Status(400).SendString("missing cartItemId")
	}
	qty := validate.Qty(c.FormValue("qty"))

	ct.UpdateQuantity(itemID, qty)
	if err := h.Store.SaveCart(sid, ct); err != nil {
		applog.Error(c, "cart.save.fail", err, map[string]any{"item": itemID})
		return c.Status(500).SendString("No se pudo guardar el carrito")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid, ct, err := h.load(c)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).SendString("No se pudo cargar el carrito")
	}

	itemID := c.FormValue("cartItemId")
	if itemID == "" {
		return c.Status(400).SendString("missing cartItemId")
	}

	ct.RemoveItem(itemID)
	if err := h.Store.SaveCart(sid, ct); err != nil {
		applog.Error(c, "cart.save.fail", err, map[string]any{"item": itemID})
		return c.Status(500).SendString("No se pudo guardar el carrito")
	}
	applog.Audit(c, "cart.remove", map[string]any{"item": itemID})
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid, ct, err := h.load(c)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).SendString("No se pudo cargar el carrito")
	}
	ct.Clear()
	if err := h.Store.SaveCart(sid, ct); err != nil {
		applog.Error(c, "cart.save.fail", err, nil)
		return c.Status(500).SendString("No se pudo guardar el carrito")
	}
	applog.Audit(c, "cart.clear", nil)
	return c.Redirect("/cart")
}

// Toggle flips the side-panel flag and reports the new state.
func (h *CartHandler) Toggle(c *fiber.Ctx) error {
	sid, ct, err := h.load(c)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "cart unavailable"})
	}
	ct.Toggle()
	if err := h.Store.SaveCart(sid, ct); err != nil {
		applog.Error(c, "cart.save.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "cart unavailable"})
	}
	return c.JSON(fiber.Map{"isOpen": ct.IsOpen})
}
