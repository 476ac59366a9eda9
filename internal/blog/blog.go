// Package blog serves the static editorial content.
package blog

import "minimalstore/internal/domain"

var posts = []domain.BlogPost{
	{
		ID:       1,
		Title:    "El Arte del Armario Cápsula",
		Excerpt:  "Descubre cómo simplificar tu vida y mejorar tu estilo con menos prendas pero de mejor calidad. Una guía para principiantes.",
		Image:    "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?auto=format&fit=crop&w=800&q=80",
		Date:     "15 Mar 2024",
		Category: "Estilo de Vida",
		Author:   "Sofía M.",
	},
	{
		ID:       2,
		Title:    "Cuidado de Prendas: Algodón Orgánico",
		Excerpt:  "Aprende los mejores trucos para lavar y mantener tus prendas de algodón orgánico como nuevas por más tiempo.",
		Image:    "https://images.unsplash.com/photo-1545173168-9f1947eebb7f?auto=format&fit=crop&w=800&q=80",
		Date:     "10 Mar 2024",
		Category: "Guías",
		Author:   "Carlos R.",
	},
	{
		ID:       3,
		Title:    "Tendencias Minimalistas para 2024",
		Excerpt:  "Analizamos las tendencias que dominarán este año: colores neutros, cortes limpios y sostenibilidad.",
		Image:    "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&w=800&q=80",
		Date:     "05 Mar 2024",
		Category: "Tendencias",
		Author:   "Ana L.",
	},
}

func Posts() []domain.BlogPost { return posts }

func Get(id int) (domain.BlogPost, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BlogPost{}, false
}
