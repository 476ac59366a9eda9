package handlers

import (
	"minimalstore/internal/catalog"
	"minimalstore/internal/checkout"
	"minimalstore/internal/config"
	"minimalstore/internal/storage"
)

type Deps struct {
	HomeHandler       *HomeHandler
	ProductHandler    *ProductHandler
	CartHandler       *CartHandler
	WishlistHandler   *WishlistHandler
	CheckoutHandler   *CheckoutHandler
	AuthHandler       *AuthHandler
	BlogHandler       *BlogHandler
	NewsletterHandler *NewsletterHandler
}

func NewDeps(cat *catalog.Catalog, store *storage.Containers, cfg config.Config) *Deps {
	processor := checkout.NewProcessor(cfg.CheckoutDelay)
	postal := checkout.NewPostalLookup(cfg.ZipAPIURL)

	return &Deps{
		HomeHandler:       &HomeHandler{Catalog: cat, Store: store},
		ProductHandler:    &ProductHandler{Catalog: cat, Store: store},
		CartHandler:       &CartHandler{Catalog: cat, Store: store},
		WishlistHandler:   &WishlistHandler{Catalog: cat, Store: store},
		CheckoutHandler:   &CheckoutHandler{Store: store, Processor: processor, Postal: postal},
		AuthHandler:       &AuthHandler{Store: store},
		BlogHandler:       &BlogHandler{},
		NewsletterHandler: &NewsletterHandler{Store: store},
	}
}
