package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimalstore/internal/catalog"
	"minimalstore/internal/config"
	"minimalstore/internal/http/handlers"
	"minimalstore/internal/storage"
)

// newApp wires the full route table against an in-memory database. The
// csrf and rate-limit middlewares stay out so tests can post directly.
func newApp(t *testing.T, cfg config.Config) (*fiber.App, *storage.Containers) {
	t.Helper()

	db, err := storage.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := storage.NewContainers(storage.NewStore(db))
	cat := catalog.Default()

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Inténtalo de nuevo.",
			})
		},
	})

	deps := handlers.NewDeps(cat, store, cfg)
	deps.CheckoutHandler.Postal.Delay = 0

	app.Get("/", deps.HomeHandler.Home)
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)

	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/quantity", deps.CartHandler.UpdateQuantity)
	app.Post("/cart/delete", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/cart/toggle", deps.CartHandler.Toggle)

	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist", deps.WishlistHandler.Toggle)
	app.Post("/wishlist/clear", deps.WishlistHandler.Clear)
	app.Post("/wishlist/toggle", deps.WishlistHandler.ToggleSidebar)

	app.Get("/checkout", deps.CheckoutHandler.Form)
	app.Post("/checkout", deps.CheckoutHandler.Submit)
	app.Get("/thank-you", deps.CheckoutHandler.ThankYou)
	app.Get("/api/v1/postal/:code", deps.CheckoutHandler.PostalCity)

	app.Get("/blog", deps.BlogHandler.List)
	app.Get("/blog/:id", deps.BlogHandler.Post)

	app.Post("/newsletter/seen", deps.NewsletterHandler.Dismiss)

	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Get("/account", handlers.RequireUser(store), deps.AuthHandler.Account)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	return app, store
}

func testConfig() config.Config {
	return config.Config{CheckoutDelay: 0, ZipAPIURL: "http://unused.invalid"}
}

func get(t *testing.T, app *fiber.App, path, sid string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path, sid string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sidOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			return ck.Value
		}
	}
	t.Fatal("no sid cookie set")
	return ""
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHomeRenders(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := get(t, app, "/", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Camiseta Básica White")
}

func TestProductListFilters(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := get(t, app, "/products?category=Pantalones&minPrice=50", "")
	assert.Equal(t, 200, resp.StatusCode)

	b := body(t, resp)
	assert.Contains(t, b, "Pantalón Chino Beige")
	assert.Contains(t, b, "Jeans Slim Fit")
	assert.NotContains(t, b, "Camiseta Oversize Black")
}

func TestProductListRejectsHostileSearch(t *testing.T) {
	app, _ := newApp(t, testConfig())

	// characters outside the search whitelist drop the predicate entirely
	resp := get(t, app, "/products?search="+url.QueryEscape("<script>"), "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Mochila Urbana")
}

func TestProductDetail(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := get(t, app, "/product/1?size=XL&color=Negro", "")
	assert.Equal(t, 200, resp.StatusCode)
	b := body(t, resp)
	assert.Contains(t, b, "Camiseta Básica White")
	assert.Contains(t, b, "32") // 25 base + 5 XL + 2 Negro

	resp = get(t, app, "/product/999", "")
	assert.Equal(t, 404, resp.StatusCode)

	resp = get(t, app, "/product/abc", "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCartAddMergesVariants(t *testing.T) {
	app, store := newApp(t, testConfig())

	form := url.Values{"productId": {"1"}, "size": {"S"}}
	resp := postForm(t, app, "/cart", "", form)
	require.Equal(t, 302, resp.StatusCode)
	sid := sidOf(t, resp)

	postForm(t, app, "/cart", sid, form)
	postForm(t, app, "/cart", sid, url.Values{"productId": {"1"}, "size": {"M"}})

	ct, err := store.Cart(sid)
	require.NoError(t, err)
	require.Len(t, ct.Items, 2)
	assert.Equal(t, "1-S", ct.Items[0].CartItemID)
	assert.Equal(t, 2, ct.Items[0].Quantity)
	assert.Equal(t, "1-M", ct.Items[1].CartItemID)
	assert.Equal(t, 3, ct.TotalItems())
}

func TestCartAddSnapshotsVariantPrice(t *testing.T) {
	app, store := newApp(t, testConfig())

	resp := postForm(t, app, "/cart", "", url.Values{
		"productId": {"1"}, "size": {"XL"}, "color": {"Negro"},
	})
	sid := sidOf(t, resp)

	ct, err := store.Cart(sid)
	require.NoError(t, err)
	require.Len(t, ct.Items, 1)
	assert.Equal(t, "1-XL-Negro", ct.Items[0].CartItemID)
	assert.True(t, ct.Items[0].Price.Equal(decimal.NewFromInt(32)))
}

func TestCartQuantityAndRemove(t *testing.T) {
	app, store := newApp(t, testConfig())

	resp := postForm(t, app, "/cart", "", url.Values{"productId": {"2"}})
	sid := sidOf(t, resp)

	postForm(t, app, "/cart/quantity", sid, url.Values{"cartItemId": {"2"}, "qty": {"4"}})
	ct, err := store.Cart(sid)
	require.NoError(t, err)
	assert.Equal(t, 4, ct.Items[0].Quantity)

	// out-of-range quantities clamp instead of failing
	postForm(t, app, "/cart/quantity", sid, url.Values{"cartItemId": {"2"}, "qty": {"999"}})
	ct, _ = store.Cart(sid)
	assert.Equal(t, 50, ct.Items[0].Quantity)

	postForm(t, app, "/cart/delete", sid, url.Values{"cartItemId": {"2"}})
	ct, _ = store.Cart(sid)
	assert.Empty(t, ct.Items)
}

func TestCartAddUnknownProduct(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := postForm(t, app, "/cart", "", url.Values{"productId": {"999"}})
	assert.Equal(t, 404, resp.StatusCode)

	resp = postForm(t, app, "/cart", "", url.Values{})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCartToggleReportsState(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := postForm(t, app, "/cart/toggle", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	sid := sidOf(t, resp)

	var out struct {
		IsOpen bool `json:"isOpen"`
	}
	require.NoError(t, json.Unmarshal([]byte(body(t, resp)), &out))
	assert.True(t, out.IsOpen)

	resp = postForm(t, app, "/cart/toggle", sid, nil)
	require.NoError(t, json.Unmarshal([]byte(body(t, resp)), &out))
	assert.False(t, out.IsOpen)
}

func TestWishlistToggle(t *testing.T) {
	app, store := newApp(t, testConfig())

	resp := postForm(t, app, "/wishlist", "", url.Values{"productId": {"4"}})
	require.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/wishlist", resp.Header.Get("Location"))
	sid := sidOf(t, resp)

	wl, err := store.Wishlist(sid)
	require.NoError(t, err)
	assert.True(t, wl.Contains(4))

	postForm(t, app, "/wishlist", sid, url.Values{"productId": {"4"}})
	wl, _ = store.Wishlist(sid)
	assert.False(t, wl.Contains(4))
}

func TestWishlistClear(t *testing.T) {
	app, store := newApp(t, testConfig())

	resp := postForm(t, app, "/wishlist", "", url.Values{"productId": {"4"}})
	sid := sidOf(t, resp)
	postForm(t, app, "/wishlist", sid, url.Values{"productId": {"8"}})

	postForm(t, app, "/wishlist/clear", sid, nil)
	wl, err := store.Wishlist(sid)
	require.NoError(t, err)
	assert.Empty(t, wl.Items)
}

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := postForm(t, app, "/checkout", "", url.Values{"email": {"a@b.com"}})
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/products", resp.Header.Get("Location"))
}

func TestCheckoutInvalidFormRerenders(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := postForm(t, app, "/cart", "", url.Values{"productId": {"1"}})
	sid := sidOf(t, resp)

	resp = postForm(t, app, "/checkout", sid, url.Values{"email": {"not-an-email"}})
	assert.Equal(t, 422, resp.StatusCode)
	b := body(t, resp)
	assert.Contains(t, b, "Correo inválido")
	assert.Contains(t, b, "El nombre es obligatorio")
}

func TestCheckoutSuccessClearsCartAndRedirects(t *testing.T) {
	app, store := newApp(t, testConfig())

	resp := postForm(t, app, "/cart", "", url.Values{"productId": {"1"}, "size": {"S"}})
	sid := sidOf(t, resp)

	resp = postForm(t, app, "/checkout", sid, url.Values{
		"email":      {"ana@example.com"},
		"firstName":  {"Ana"},
		"lastName":   {"García"},
		"address":    {"Av. Reforma 123"},
		"city":       {"Ciudad de México"},
		"postalCode": {"06600"},
		"phone":      {"(55) 123-4567"},
	})
	require.Equal(t, 302, resp.StatusCode)
	loc := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/thank-you?order="), "got %q", loc)

	ct, err := store.Cart(sid)
	require.NoError(t, err)
	assert.Empty(t, ct.Items)
}

func TestPostalCityAPI(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"places":[{"place name":"Juárez"}]}`)
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.ZipAPIURL = upstream.URL
	app, _ := newApp(t, cfg)

	resp := get(t, app, "/api/v1/postal/06600", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"city":"Juárez"}`, body(t, resp))

	resp = get(t, app, "/api/v1/postal/123", "")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPostalCityLookupFailureIsEmptyObject(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.ZipAPIURL = upstream.URL
	app, _ := newApp(t, cfg)

	resp := get(t, app, "/api/v1/postal/99999", "")
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{}`, body(t, resp))
}

func TestNewsletterDismiss(t *testing.T) {
	app, store := newApp(t, testConfig())

	resp := postForm(t, app, "/newsletter/seen", "", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"seen":true}`, body(t, resp))

	seen, err := store.NewsletterSeen(sidOf(t, resp))
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestLoginFlow(t *testing.T) {
	app, store := newApp(t, testConfig())

	// the account page is gated
	resp := get(t, app, "/account", "")
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// any well-formed email signs in
	resp = postForm(t, app, "/login", "", url.Values{"email": {"ana@example.com"}, "name": {"Ana"}})
	require.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/account", resp.Header.Get("Location"))
	sid := sidOf(t, resp)

	sess, err := store.Auth(sid)
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated)

	resp = get(t, app, "/account", sid)
	assert.Equal(t, 200, resp.StatusCode)

	resp = postForm(t, app, "/logout", sid, nil)
	assert.Equal(t, 302, resp.StatusCode)
	sess, _ = store.Auth(sid)
	assert.False(t, sess.IsAuthenticated)
}

func TestLoginRejectsBadEmail(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := postForm(t, app, "/login", "", url.Values{"email": {"not-an-email"}})
	assert.Equal(t, 401, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Correo inválido")
}

func TestBlog(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := get(t, app, "/blog", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, body(t, resp), "El Arte del Armario Cápsula")

	resp = get(t, app, "/blog/1", "")
	assert.Equal(t, 200, resp.StatusCode)

	resp = get(t, app, "/blog/99", "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestNotFoundFallback(t *testing.T) {
	app, _ := newApp(t, testConfig())

	resp := get(t, app, "/definitely/not/a/page", "")
	assert.Equal(t, 404, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Página no encontrada")
}
