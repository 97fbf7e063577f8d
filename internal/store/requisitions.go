package store

import (
	"context"
	"database/sql"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// Requisitions returns the requisition history, most recent first.
func Requisitions(ctx context.Context, db *sql.DB) ([]model.Requisition, error) {
	return loadCollection[model.Requisition](ctx, db, keyRequisitions)
}

// AppendRequisition prepends a requisition to the stored history. This is
// read-modify-write over the whole collection, not an atomic append.
func AppendRequisition(ctx context.Context, db *sql.DB, req model.Requisition) error {
	current, err := Requisitions(ctx, db)
	if err != nil {
		return err
	}

	merged := make([]model.Requisition, 0, len(current)+1)
	merged = append(merged, req)
	merged = append(merged, current...)

	return saveCollection(ctx, db, keyRequisitions, merged)
}
