package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/domain"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
	"minimalstore/internal/validate"
)

type AuthHandler struct {
	Store *storage.Containers
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

// Login is a demo login: any well-formed email signs in, no credential
// check. The session persists across visits until logout.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)

	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Correo inválido"})
	}
	name, _ := validate.Name(c.FormValue("name"))

	sess, err := h.Store.Auth(sid)
	if err != nil {
		applog.Error(c, "auth.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Algo salió mal. Inténtalo de nuevo."})
	}
	sess.Login(domain.User{Email: email, Name: name})
	if err := h.Store.SaveAuth(sid, sess); err != nil {
		applog.Error(c, "auth.save.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Algo salió mal. Inténtalo de nuevo."})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/account")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	sess, err := h.Store.Auth(sid)
	if err != nil {
		applog.Error(c, "auth.load.fail", err, nil)
	}
	sess.Logout()
	if err := h.Store.SaveAuth(sid, sess); err != nil {
		applog.Error(c, "auth.save.fail", err, nil)
	}
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

func (h *AuthHandler) Account(c *fiber.Ctx) error {
	return render(c, "account", nil)
}
