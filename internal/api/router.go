package api

import (
	"database/sql"
	"net/http"

	"github.com/ativahospitalar/galinheiro/internal/cart"
	"github.com/ativahospitalar/galinheiro/internal/notify"
)

// Options carries the router's external collaborators and settings.
type Options struct {
	JWTSecret      string
	WhatsAppNumber string
	Categories     []string
	Carts          *cart.Store
	Notifier       notify.Notifier
}

// NewRouter builds the HTTP API. All routes except login and register
// require a valid bearer token; product and user management additionally
// require the admin role.
func NewRouter(db *sql.DB, opts Options) http.Handler {
	authH := &AuthHandler{DB: db, JWTSecret: opts.JWTSecret, Carts: opts.Carts}
	catalogH := &CatalogHandler{DB: db, Categories: opts.Categories}
	productsH := &ProductsHandler{DB: db}
	cartH := &CartHandler{DB: db, Carts: opts.Carts}
	checkoutH := &CheckoutHandler{
		DB:             db,
		Carts:          opts.Carts,
		Notifier:       opts.Notifier,
		WhatsAppNumber: opts.WhatsAppNumber,
	}
	historyH := &HistoryHandler{DB: db}
	usersH := &UsersHandler{DB: db}

	withAuth := AuthMiddleware(opts.JWTSecret)
	authed := func(h http.HandlerFunc) http.Handler { return withAuth(h) }
	admin := func(h http.HandlerFunc) http.Handler { return withAuth(RequireAdmin(h)) }

	mux := http.NewServeMux()

	// Public.
	mux.HandleFunc("POST /api/auth/login", authH.Login)
	mux.HandleFunc("POST /api/auth/register", authH.Register)

	// Authenticated.
	mux.Handle("POST /api/auth/logout", authed(authH.Logout))
	mux.Handle("GET /api/catalog", authed(catalogH.List))
	mux.Handle("GET /api/categories", authed(catalogH.ListCategories))
	mux.Handle("GET /api/cart", authed(cartH.Get))
	mux.Handle("POST /api/cart/items", authed(cartH.AddItem))
	mux.Handle("DELETE /api/cart/items/{productID}", authed(cartH.RemoveItem))
	mux.Handle("DELETE /api/cart", authed(cartH.Clear))
	mux.Handle("POST /api/checkout", authed(checkoutH.Checkout))
	mux.Handle("GET /api/requisitions", authed(historyH.ListRequisitions))

	// Admin.
	mux.Handle("GET /api/movements", admin(historyH.ListMovements))
	mux.Handle("GET /api/products", admin(productsH.List))
	mux.Handle("POST /api/products", admin(productsH.Create))
	mux.Handle("PUT /api/products/{id}", admin(productsH.Update))
	mux.Handle("DELETE /api/products/{id}", admin(productsH.Delete))
	mux.Handle("PUT /api/products/{id}/image", admin(productsH.UploadImage))
	mux.Handle("GET /api/users", admin(usersH.List))
	mux.Handle("PUT /api/users/{id}", admin(usersH.Update))
	mux.Handle("DELETE /api/users/{id}", admin(usersH.Delete))

	return mux
}
