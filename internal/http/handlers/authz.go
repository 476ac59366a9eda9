package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
)

// RequireUser gates routes behind an authenticated session.
func RequireUser(store *storage.Containers) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		sess, err := store.Auth(sid)
		if err != nil {
			applog.Error(c, "auth.load.fail", err, nil)
			return c.Redirect("/login")
		}
		if !sess.IsAuthenticated {
			applog.Security(c, "authz.denied", map[string]any{"path": c.Path()})
			return c.Redirect("/login")
		}
		c.Locals("user", sess.User)
		return c.Next()
	}
}
