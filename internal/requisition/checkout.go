// Package requisition implements the checkout workflow: it turns a cart
// snapshot into a requisition record, a batch of stock movements and an
// updated product list, and persists all three.
package requisition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/notify"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

// ErrNothingToFinalize is returned when the checkout preconditions fail.
var ErrNothingToFinalize = errors.New("no authenticated user or empty cart")

// Requester identifies the user a requisition is finalized for. It is
// normally taken from session claims, not re-read from the user list.
type Requester struct {
	ID   string
	Name string
}

// Result is a finalized checkout.
type Result struct {
	Requisition model.Requisition
	Movements   []model.StockMovement
	Message     string
	WhatsAppURL string
}

// Finalize runs the checkout workflow for a cart snapshot:
//
//  1. generate the protocol code,
//  2. build the requisition and one OUT movement per cart entry,
//  3. decrement stock for every referenced product (no floor at zero),
//  4. persist requisition, movements and products as three independent
//     concurrent writes with no rollback,
//  5. compose the summary message and its WhatsApp deep link.
//
// A write failure is reported as a single error; writes that already
// succeeded are not undone.
func Finalize(ctx context.Context, db *sql.DB, requester Requester, items []model.CartItem, whatsappNumber string) (*Result, error) {
	if requester.ID == "" || len(items) == 0 {
		return nil, ErrNothingToFinalize
	}

	protocol, err := NewProtocolID()
	if err != nil {
		return nil, fmt.Errorf("generating protocol: %w", err)
	}
	now := time.Now()

	req := model.Requisition{
		ID:        protocol,
		UserID:    requester.ID,
		UserName:  requester.Name,
		Timestamp: now,
		Items:     make([]model.RequisitionItem, 0, len(items)),
	}
	movements := make([]model.StockMovement, 0, len(items))
	quantities := make(map[string]int, len(items))

	for _, item := range items {
		req.Items = append(req.Items, model.RequisitionItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Unit:        item.Product.Unit,
		})
		movements = append(movements, model.StockMovement{
			ID:          uuid.NewString(),
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Type:        model.MovementOut,
			Quantity:    item.Quantity,
			UserID:      requester.ID,
			UserName:    requester.Name,
			Timestamp:   now,
		})
		quantities[item.ProductID] += item.Quantity
	}

	products, err := store.Products(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}
	for i := range products {
		if qty, ok := quantities[products[i].ID]; ok {
			products[i].Stock -= qty
			products[i].UpdatedAt = now
		}
	}

	// Three independent writes, run concurrently. No cross-collection
	// transaction: the first error fails the workflow but already-completed
	// writes stand.
	var g errgroup.Group
	g.Go(func() error { return store.AppendRequisition(ctx, db, req) })
	g.Go(func() error { return store.AppendMovements(ctx, db, movements) })
	g.Go(func() error { return store.SaveProducts(ctx, db, products) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("finalizing requisition: %w", err)
	}

	message := ComposeMessage(requester.Name, protocol, items)
	return &Result{
		Requisition: req,
		Movements:   movements,
		Message:     message,
		WhatsAppURL: notify.WhatsAppLink(whatsappNumber, message),
	}, nil
}
