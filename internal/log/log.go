// Package log is the app's action logger: one JSON line per notable event,
// enriched with request context when a fiber Ctx is available.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Setup configures the global level and sink. An unknown level falls back
// to info.
func Setup(level string, out io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if out == nil {
		out = os.Stdout
	}
	base = zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}

func write(ev *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	if c != nil {
		ev = ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev = ev.Str("req_id", rid)
		}
	}
	if err != nil {
		ev = ev.Err(err)
	}
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Str("action", action).Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(base.Info(), c, action, nil, fields)
}

// Audit records user-visible state changes (cart, wishlist, login, orders).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(base.Info().Str("kind", "audit"), c, action, nil, fields)
}

// Security records rejected or suspicious input.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(base.Warn(), c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(base.Error(), c, action, err, fields)
}
