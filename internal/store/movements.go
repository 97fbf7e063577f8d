package store

import (
	"context"
	"database/sql"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// Movements returns the stock movement ledger, most recent batch first.
func Movements(ctx context.Context, db *sql.DB) ([]model.StockMovement, error) {
	return loadCollection[model.StockMovement](ctx, db, keyMovements)
}

// AppendMovements prepends a batch of movements to the stored ledger,
// preserving batch order. Read-modify-write, not an atomic append.
func AppendMovements(ctx context.Context, db *sql.DB, movements []model.StockMovement) error {
	current, err := Movements(ctx, db)
	if err != nil {
		return err
	}

	merged := make([]model.StockMovement, 0, len(current)+len(movements))
	merged = append(merged, movements...)
	merged = append(merged, current...)

	return saveCollection(ctx, db, keyMovements, merged)
}
