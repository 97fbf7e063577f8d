package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ativahospitalar/galinheiro/internal/cart"
	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/notify"
	"github.com/ativahospitalar/galinheiro/internal/requisition"
)

// CheckoutHandler finalizes the authenticated user's cart.
type CheckoutHandler struct {
	DB             *sql.DB
	Carts          *cart.Store
	Notifier       notify.Notifier
	WhatsAppNumber string
}

type checkoutResponse struct {
	Requisition model.Requisition     `json:"requisition"`
	Movements   []model.StockMovement `json:"movements"`
	WhatsAppURL string                `json:"whatsapp_url"`
}

// Checkout handles POST /api/checkout. The requester identity comes from
// the session claims, not a fresh user-list read. On failure the cart is
// left intact for a manual retry; nothing is rolled back.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := h.Carts.BeginCheckout(claims.UserID)
	if errors.Is(err, cart.ErrEmptyCart) {
		jsonError(w, http.StatusBadRequest, "cart is empty")
		return
	}
	if errors.Is(err, cart.ErrCheckoutInFlight) {
		jsonError(w, http.StatusConflict, "a checkout is already in progress")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to start checkout")
		return
	}

	requester := requisition.Requester{ID: claims.UserID, Name: claims.Name}
	result, err := requisition.Finalize(r.Context(), h.DB, requester, items, h.WhatsAppNumber)
	if err != nil {
		h.Carts.FinishCheckout(claims.UserID, false)
		slog.Error("checkout failed", "user", claims.Username, "error", err)
		jsonError(w, http.StatusInternalServerError, "checkout failed")
		return
	}
	h.Carts.FinishCheckout(claims.UserID, true)

	// Fire-and-forget: delivery is never awaited and a transport failure
	// does not fail the checkout.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := h.Notifier.Send(ctx, notify.Message{
			Protocol:  result.Requisition.ID,
			Requester: requester.Name,
			Text:      result.Message,
		}); err != nil {
			slog.Warn("requisition notification failed", "protocol", result.Requisition.ID, "error", err)
		}
	}()

	slog.Info("requisition finalized",
		"protocol", result.Requisition.ID,
		"user", claims.Username,
		"items", len(result.Requisition.Items),
	)
	jsonResponse(w, http.StatusCreated, checkoutResponse{
		Requisition: result.Requisition,
		Movements:   result.Movements,
		WhatsAppURL: result.WhatsAppURL,
	})
}
