package handlers

import (
	"github.com/gofiber/fiber/v2"

	"minimalstore/internal/catalog"
	"minimalstore/internal/domain"
	applog "minimalstore/internal/log"
	"minimalstore/internal/storage"
)

type HomeHandler struct {
	Catalog *catalog.Catalog
	Store   *storage.Containers
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)

	seen, err := h.Store.NewsletterSeen(sid)
	if err != nil {
		applog.Error(c, "newsletter.load.fail", err, nil)
	}

	products := h.Catalog.Products()
	featured := products
	if len(featured) > 4 {
		featured = featured[:4]
	}
	var newest []domain.Product
	for _, p := range products {
		if p.IsNew {
			newest = append(newest, p)
		}
	}

	return render(c, "home", fiber.Map{
		"Featured":       featured,
		"New":            newest,
		"ShowNewsletter": !seen,
	})
}
