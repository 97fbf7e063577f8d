package model

import "time"

// RequisitionItem is one line of a requisition. Product name and unit are
// denormalized so that later catalog edits never rewrite history.
type RequisitionItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
}

// Requisition is a finalized, immutable supply request.
type Requisition struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	UserName  string            `json:"user_name"`
	Timestamp time.Time         `json:"timestamp"`
	Items     []RequisitionItem `json:"items"`
}

// Movement directions. Checkout only ever produces OUT movements.
const MovementOut = "OUT"

// StockMovement is an immutable ledger entry for one product's quantity
// change, tied to the acting user.
type StockMovement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Timestamp   time.Time `json:"timestamp"`
}
