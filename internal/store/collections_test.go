package store

import (
	"context"
	"testing"

	"github.com/ativahospitalar/galinheiro/internal/db"
	"github.com/ativahospitalar/galinheiro/internal/model"
)

func TestMissingCollectionIsEmpty(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	products, err := Products(ctx, database)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty collection, got %d entries", len(products))
	}
}

func TestReadIsIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := SaveProducts(ctx, database, []model.Product{
		{ID: "p1", Name: "Luva Nitrílica", Category: "Higiene", Stock: 10, Unit: model.UnitCaixa, Status: model.ProductStatusActive},
		{ID: "p2", Name: "Álcool 70%", Category: "Limpeza", Stock: 3, Unit: model.UnitLitro, Status: model.ProductStatusActive},
	}); err != nil {
		t.Fatalf("SaveProducts: %v", err)
	}

	first, err := Products(ctx, database)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := Products(ctx, database)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("reads differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs between reads: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	SaveProducts(ctx, database, []model.Product{{ID: "p1", Name: "Gaze"}})
	SaveProducts(ctx, database, []model.Product{{ID: "p2", Name: "Seringa"}})

	products, _ := Products(ctx, database)
	if len(products) != 1 || products[0].ID != "p2" {
		t.Errorf("expected only the last saved collection, got %+v", products)
	}
}

func TestMalformedCollectionPropagates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := database.ExecContext(ctx,
		`INSERT INTO collections (key, value) VALUES ('sm_products', 'not json')`,
	); err != nil {
		t.Fatalf("seeding malformed value: %v", err)
	}

	if _, err := Products(ctx, database); err == nil {
		t.Error("expected an error for malformed stored data")
	}
}
