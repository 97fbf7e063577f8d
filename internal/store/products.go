package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// ErrProductNotFound is returned when a product ID matches no record.
var ErrProductNotFound = errors.New("product not found")

// Products returns the full product collection.
func Products(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	return loadCollection[model.Product](ctx, db, keyProducts)
}

// SaveProducts overwrites the full product collection.
func SaveProducts(ctx context.Context, db *sql.DB, products []model.Product) error {
	return saveCollection(ctx, db, keyProducts, products)
}

// GetProduct returns a product by ID, or ErrProductNotFound.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	products, err := Products(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// CreateProduct assigns an identifier and update timestamp and appends the
// product to the collection. A conversion factor is kept only when positive.
func CreateProduct(ctx context.Context, db *sql.DB, p model.Product) (*model.Product, error) {
	products, err := Products(ctx, db)
	if err != nil {
		return nil, err
	}

	p.ID = uuid.NewString()
	p.UpdatedAt = time.Now()
	p.ConversionFactor = normalizeFactor(p.ConversionFactor)

	products = append(products, p)
	if err := SaveProducts(ctx, db, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductUpdate names exactly the mutable product fields. Nil fields are
// left untouched.
type ProductUpdate struct {
	SKU              *string
	InternalCode     *string
	Name             *string
	Description      *string
	Category         *string
	Stock            *int
	Unit             *string
	ConversionFactor *float64
	Status           *string
	ImageURL         *string
}

// UpdateProduct merges an update command into the identified product and
// refreshes its update timestamp.
func UpdateProduct(ctx context.Context, db *sql.DB, id string, upd ProductUpdate) (*model.Product, error) {
	products, err := Products(ctx, db)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}

		p := &products[i]
		if upd.SKU != nil {
			p.SKU = *upd.SKU
		}
		if upd.InternalCode != nil {
			p.InternalCode = *upd.InternalCode
		}
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.Stock != nil {
			p.Stock = *upd.Stock
		}
		if upd.Unit != nil {
			p.Unit = *upd.Unit
		}
		if upd.ConversionFactor != nil {
			p.ConversionFactor = normalizeFactor(upd.ConversionFactor)
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.ImageURL != nil {
			p.ImageURL = *upd.ImageURL
		}
		p.UpdatedAt = time.Now()

		if err := SaveProducts(ctx, db, products); err != nil {
			return nil, err
		}
		updated := *p
		return &updated, nil
	}

	return nil, ErrProductNotFound
}

// DeleteProduct removes a product by ID. Requisition and movement history
// keeps its denormalized names and is never rewritten.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	products, err := Products(ctx, db)
	if err != nil {
		return err
	}

	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrProductNotFound
	}

	return SaveProducts(ctx, db, kept)
}

// normalizeFactor maps non-positive conversion factors to nil, the
// "not applicable" sentinel.
func normalizeFactor(f *float64) *float64 {
	if f == nil || *f <= 0 {
		return nil
	}
	v := *f
	return &v
}
