package main

import (
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"minimalstore/internal/catalog"
	"minimalstore/internal/config"
	"minimalstore/internal/http/handlers"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}
	applog.Setup(cfg.LogLevel, os.Stdout)

	db, err := storage.OpenDB(cfg.DBDSN)
	if err != nil {
		stdlog.Fatal(err)
	}
	store := storage.NewContainers(storage.NewStore(db))
	cat := catalog.Default()

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message without leaking internals
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Inténtalo de nuevo.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo salió mal. Inténtalo de nuevo.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach the session user to the context for templates
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if sess, err := store.Auth(sid); err == nil && sess.IsAuthenticated {
				c.Locals("user", sess.User)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{
				"Message": "La verificación de seguridad falló. Actualiza la página e inténtalo de nuevo.",
			})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(cat, store, cfg)

	// Public pages
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/quantity", deps.CartHandler.UpdateQuantity)
	app.Post("/cart/delete", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/cart/toggle", deps.CartHandler.Toggle)

	// Wishlist
	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist", deps.WishlistHandler.Toggle)
	app.Post("/wishlist/clear", deps.WishlistHandler.Clear)
	app.Post("/wishlist/toggle", deps.WishlistHandler.ToggleSidebar)

	// Checkout
	app.Get("/checkout", deps.CheckoutHandler.Form)
	app.Post("/checkout", deps.CheckoutHandler.Submit)
	app.Get("/thank-you", deps.CheckoutHandler.ThankYou)

	// API
	api := app.Group("/api/v1")
	postalLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|postal"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.postal.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/postal/:code", postalLimiter, deps.CheckoutHandler.PostalCity)

	// Blog
	app.Get("/blog", deps.BlogHandler.List)
	app.Get("/blog/:id", deps.BlogHandler.Post)

	// Newsletter popup flag
	app.Post("/newsletter/seen", deps.NewsletterHandler.Dismiss)

	// Auth (demo login, throttled anyway)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Demasiados intentos. Inténtalo más tarde."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Get("/account", handlers.RequireUser(store), deps.AuthHandler.Account)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	stdlog.Fatal(app.Listen(":" + cfg.Port))
}
