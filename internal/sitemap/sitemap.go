// Package sitemap emits the build-time URL listing from the static product
// and blog data. It is not part of the runtime request path.
package sitemap

import (
	"fmt"
	"io"

	"minimalstore/internal/domain"
)

type route struct {
	URL        string
	ChangeFreq string
	Priority   string
}

var staticRoutes = []route{
	{"/", "daily", "1.0"},
	{"/products", "daily", "0.8"},
	{"/blog", "weekly", "0.7"},
	{"/about", "monthly", "0.5"},
	{"/contact", "yearly", "0.5"},
	{"/faq", "monthly", "0.5"},
}

// Write renders the urlset for the site's static routes plus one entry per
// product and blog post.
func Write(w io.Writer, domainURL string, products []domain.Product, posts []domain.BlogPost) error {
	routes := make([]route, 0, len(staticRoutes)+len(products)+len(posts))
	routes = append(routes, staticRoutes...)
	for _, p := range products {
		routes = append(routes, route{fmt.Sprintf("/product/%d", p.ID), "weekly", "0.6"})
	}
	for _, p := range posts {
		routes = append(routes, route{fmt.Sprintf("/blog/%d", p.ID), "monthly", "0.6"})
	}

	if _, err := fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`+"\n"); err != nil {
		return err
	}
	for _, r := range routes {
		if _, err := fmt.Fprintf(w,
			"  <url>\n    <loc>%s%s</loc>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			domainURL, r.URL, r.ChangeFreq, r.Priority); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "</urlset>\n")
	return err
}
