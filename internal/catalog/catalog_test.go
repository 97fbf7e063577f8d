package catalog

import (
	"testing"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Luva Nitrílica", InternalCode: "LV-100", Category: "Higiene", Status: model.ProductStatusActive},
		{ID: "p2", Name: "Café em Pó", Category: "Cofee-Break", Status: model.ProductStatusActive},
		{ID: "p3", Name: "Álcool 70%", InternalCode: "AL-070", Category: "Limpeza", Status: model.ProductStatusActive},
		{ID: "p4", Name: "Luva Cirúrgica", Category: "Higiene", Status: model.ProductStatusInactive},
	}
}

func ids(products []model.Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterAllReturnsActiveSubset(t *testing.T) {
	got := Filter(sampleProducts(), "", All)
	if len(got) != 3 {
		t.Fatalf("expected 3 active products, got %v", ids(got))
	}
	for _, p := range got {
		if p.Status != model.ProductStatusActive {
			t.Errorf("inactive product %q leaked into catalog", p.ID)
		}
	}
}

func TestFilterByCategoryIsSubsetOfAll(t *testing.T) {
	all := Filter(sampleProducts(), "", All)
	higiene := Filter(sampleProducts(), "", "Higiene")

	if len(higiene) >= len(all) {
		t.Errorf("category filter should be a strict subset: %d vs %d", len(higiene), len(all))
	}
	for _, p := range higiene {
		if p.Category != "Higiene" {
			t.Errorf("product %q has category %q", p.ID, p.Category)
		}
	}
}

func TestFilterSearchByNameCaseInsensitive(t *testing.T) {
	got := Filter(sampleProducts(), "luva", All)
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("expected only the active Luva, got %v", ids(got))
	}
}

func TestFilterSearchByRawInternalCode(t *testing.T) {
	got := Filter(sampleProducts(), "AL-0", All)
	if len(got) != 1 || got[0].ID != "p3" {
		t.Errorf("expected match on internal code, got %v", ids(got))
	}

	// Internal code comparison is against the raw term.
	got = Filter(sampleProducts(), "al-0", All)
	if len(got) != 0 {
		t.Errorf("expected no lowercase match on internal code, got %v", ids(got))
	}
}

func TestFilterEmptyCategoryMatchesEverything(t *testing.T) {
	if got := Filter(sampleProducts(), "", ""); len(got) != 3 {
		t.Errorf("expected empty category to behave like %q, got %v", All, ids(got))
	}
}
