package storage

import (
	"minimalstore/internal/auth"
	"minimalstore/internal/cart"
	"minimalstore/internal/wishlist"
)

// Container names double as the persisted storage keys.
const (
	ContainerCart       = "ecommerce-cart-storage"
	ContainerWishlist   = "ecommerce-wishlist-storage"
	ContainerAuth       = "ecommerce-auth-storage"
	ContainerNewsletter = "newsletter_popup_seen"
)

// Containers is the typed facade over the snapshot store: one load/save pair
// per persisted state container.
type Containers struct {
	kv *Store
}

func NewContainers(kv *Store) *Containers { return &Containers{kv: kv} }

func (c *Containers) Cart(sessionID string) (cart.Cart, error) {
	var ct cart.Cart
	_, err := c.kv.Load(sessionID, ContainerCart, &ct)
	return ct, err
}

func (c *Containers) SaveCart(sessionID string, ct cart.Cart) error {
	return c.kv.Save(sessionID, ContainerCart, ct)
}

func (c *Containers) Wishlist(sessionID string) (wishlist.Wishlist, error) {
	var wl wishlist.Wishlist
	_, err := c.kv.Load(sessionID, ContainerWishlist, &wl)
	return wl, err
}

func (c *Containers) SaveWishlist(sessionID string, wl wishlist.Wishlist) error {
	return c.kv.Save(sessionID, ContainerWishlist, wl)
}

func (c *Containers) Auth(sessionID string) (auth.Session, error) {
	var s auth.Session
	_, err := c.kv.Load(sessionID, ContainerAuth, &s)
	return s, err
}

func (c *Containers) SaveAuth(sessionID string, s auth.Session) error {
	return c.kv.Save(sessionID, ContainerAuth, s)
}

// NewsletterSeen reports whether the one-shot popup flag is set.
func (c *Containers) NewsletterSeen(sessionID string) (bool, error) {
	var seen bool
	ok, err := c.kv.Load(sessionID, ContainerNewsletter, &seen)
	if err != nil || !ok {
		return false, err
	}
	return seen, nil
}

func (c *Containers) MarkNewsletterSeen(sessionID string) error {
	return c.kv.Save(sessionID, ContainerNewsletter, true)
}
