package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/checkout"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
	"minimalstore/internal/validate"
)

type CheckoutHandler struct {
	Store     *storage.Containers
	Processor *checkout.Processor
	Postal    *checkout.PostalLookup
}

func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	sid := ensureSID(c)
	ct, err := h.Store.Cart(sid)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo cargar el carrito"})
	}
	return render(c, "checkout", fiber.Map{
		"Items":      ct.Items,
		"TotalPrice": ct.TotalPrice(),
		"Empty":      len(ct.Items) == 0,
		"Errors":     map[string]string{},
		"Form":       checkout.Form{},
	})
}

// Submit validates all fields at once; submission is blocked while any
// required validator fails. The simulated payment always succeeds, clears
// the cart and lands on the confirmation view.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	sid := ensureSID(c)
	ct, err := h.Store.Cart(sid)
	if err != nil {
		applog.Error(c, "cart.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "No se pudo cargar el carrito"})
	}
	if len(ct.Items) == 0 {
		return c.Redirect("/products")
	}

	var f checkout.Form
	if err := c.BodyParser(&f); err != nil {
		applog.Security(c, "checkout.parse.fail", map[string]any{"err": err.Error()})
		return c.Status(400).SendString("invalid form")
	}

	res := h.Processor.Submit(f, &ct)
	if res.Status == checkout.StatusInvalid {
		applog.Info(c, "checkout.invalid", map[string]any{"fields": len(res.FieldErrors)})
		return c.Status(422).Render("checkout", fiber.Map{
			"Items":      ct.Items,
			"TotalPrice": ct.TotalPrice(),
			"Empty":      false,
			"Errors":     res.FieldErrors,
			"Form":       f,
		})
	}

	if err := h.Store.SaveCart(sid, ct); err != nil {
		applog.Error(c, "cart.save.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Algo salió mal. Inténtalo de nuevo."})
	}

	applog.Audit(c, "checkout.success", map[string]any{"confirmation": res.ConfirmationID})
	return c.Redirect("/thank-you?order=" + res.ConfirmationID)
}

func (h *CheckoutHandler) ThankYou(c *fiber.Ctx) error {
	return render(c, "thankyou", fiber.Map{"Order": c.Query("order")})
}

// PostalCity is the best-effort city prefill API. Lookup failures are
// logged and reported as an empty object; the client leaves the field
// unchanged.
func (h *CheckoutHandler) PostalCity(c *fiber.Ctx) error {
	code, ok := validate.Postal(c.Params("code"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "postalCode"})
		return c.Status(400).JSON(fiber.Map{"error": "invalid postal code"})
	}
	name, err := h.Postal.PlaceName(code)
	if err != nil {
		applog.Info(c, "postal.lookup.fail", map[string]any{"code": code, "err": err.Error()})
		return c.JSON(fiber.Map{})
	}
	return c.JSON(fiber.Map{"city": name})
}
