package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
)

type NewsletterHandler struct {
	Store *storage.Containers
}

// Dismiss sets the one-shot popup flag so the newsletter prompt never shows
// again for this session.
func (h *NewsletterHandler) Dismiss(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Store.MarkNewsletterSeen(sid); err != nil {
		applog.Error(c, "newsletter.save.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not save"})
	}
	return c.JSON(fiber.Map{"seen": true})
}
