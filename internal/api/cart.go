package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/ativahospitalar/galinheiro/internal/cart"
	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

// CartHandler handles the authenticated user's cart.
type CartHandler struct {
	DB    *sql.DB
	Carts *cart.Store
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	items := h.Carts.Items(claims.UserID)
	if items == nil {
		items = []model.CartItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// AddItem handles POST /api/cart/items. Quantity defaults to 1. The product
// snapshot is taken now; later catalog edits do not touch cart entries.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		jsonError(w, http.StatusBadRequest, "product_id required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := store.GetProduct(r.Context(), h.DB, req.ProductID)
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	if err := h.Carts.Add(claims.UserID, *product, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			jsonError(w, http.StatusBadRequest, "quantity must be positive")
		case errors.Is(err, cart.ErrCheckoutInFlight):
			jsonError(w, http.StatusConflict, "a checkout is in progress")
		default:
			jsonError(w, http.StatusInternalServerError, "failed to add to cart")
		}
		return
	}

	jsonResponse(w, http.StatusOK, h.Carts.Items(claims.UserID))
}

// RemoveItem handles DELETE /api/cart/items/{productID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := h.Carts.Remove(claims.UserID, r.PathValue("productID")); err != nil {
		jsonError(w, http.StatusConflict, "a checkout is in progress")
		return
	}
	jsonResponse(w, http.StatusOK, h.Carts.Items(claims.UserID))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := h.Carts.Clear(claims.UserID); err != nil {
		jsonError(w, http.StatusConflict, "a checkout is in progress")
		return
	}
	jsonResponse(w, http.StatusOK, []model.CartItem{})
}
