package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/blog"
	"minimalstore/internal/validate"
)

type BlogHandler struct{}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	return render(c, "blog", fiber.Map{"Posts": blog.Posts()})
}

func (h *BlogHandler) Post(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Artículo no encontrado"})
	}
	p, ok := blog.Get(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Artículo no encontrado"})
	}
	return render(c, "post", fiber.Map{"Post": p})
}
