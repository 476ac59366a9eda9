// Command sitemap regenerates web/static/sitemap.xml from the static
// product and blog data. Run at build time, not at runtime.
package main

import (
	"flag"
	"log"
	"os"

	"minimalstore/internal/blog"
	"minimalstore/internal/catalog"
	"minimalstore/internal/config"
	"minimalstore/internal/sitemap"
)

func main() {
	out := flag.String("out", "web/static/sitemap.xml", "output path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	cat := catalog.Default()
	if err := sitemap.Write(f, cfg.SiteURL, cat.Products(), blog.Posts()); err != nil {
		log.Fatal(err)
	}
	log.Printf("[sitemap] wrote %s (%d products, %d posts)", *out, len(cat.Products()), len(blog.Posts()))
}
