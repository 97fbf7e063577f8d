package cart

import (
	"errors"
	"testing"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

func product(id, name string) model.Product {
	return model.Product{ID: id, Name: name, Unit: model.UnitUnidade, Status: model.ProductStatusActive}
}

func TestAddMergesSameProduct(t *testing.T) {
	s := NewStore()

	if err := s.Add("u1", product("p1", "Gaze"), 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add("u1", product("p1", "Gaze"), 3); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items := s.Items("u1")
	if len(items) != 1 {
		t.Fatalf("expected one merged entry, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	s := NewStore()

	for _, q := range []int{0, -1} {
		if err := s.Add("u1", product("p1", "Gaze"), q); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Add with quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
	if len(s.Items("u1")) != 0 {
		t.Error("expected no entries after rejected adds")
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()

	s.Add("u1", product("p1", "Gaze"), 1)
	s.Add("u2", product("p2", "Seringa"), 4)

	if items := s.Items("u1"); len(items) != 1 || items[0].ProductID != "p1" {
		t.Errorf("unexpected cart for u1: %+v", items)
	}
	if items := s.Items("u2"); len(items) != 1 || items[0].ProductID != "p2" {
		t.Errorf("unexpected cart for u2: %+v", items)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := NewStore()

	s.Add("u1", product("p1", "Gaze"), 1)
	s.Add("u1", product("p2", "Seringa"), 2)

	if err := s.Remove("u1", "p1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if items := s.Items("u1"); len(items) != 1 || items[0].ProductID != "p2" {
		t.Errorf("unexpected cart after remove: %+v", items)
	}

	if err := s.Clear("u1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if items := s.Items("u1"); len(items) != 0 {
		t.Errorf("expected empty cart after clear, got %+v", items)
	}
}

func TestBeginCheckoutGuards(t *testing.T) {
	s := NewStore()

	if _, err := s.BeginCheckout("u1"); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}

	s.Add("u1", product("p1", "Gaze"), 2)

	items, err := s.BeginCheckout("u1")
	if err != nil {
		t.Fatalf("BeginCheckout: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("unexpected checkout snapshot: %+v", items)
	}

	// Duplicate submissions and cart mutations are suppressed while in flight.
	if _, err := s.BeginCheckout("u1"); !errors.Is(err, ErrCheckoutInFlight) {
		t.Errorf("expected ErrCheckoutInFlight, got %v", err)
	}
	if err := s.Add("u1", product("p2", "Seringa"), 1); !errors.Is(err, ErrCheckoutInFlight) {
		t.Errorf("expected ErrCheckoutInFlight on Add, got %v", err)
	}
	if err := s.Clear("u1"); !errors.Is(err, ErrCheckoutInFlight) {
		t.Errorf("expected ErrCheckoutInFlight on Clear, got %v", err)
	}
}

func TestFinishCheckoutSuccessClearsCart(t *testing.T) {
	s := NewStore()
	s.Add("u1", product("p1", "Gaze"), 2)

	s.BeginCheckout("u1")
	s.FinishCheckout("u1", true)

	if items := s.Items("u1"); len(items) != 0 {
		t.Errorf("expected empty cart after successful checkout, got %+v", items)
	}
	if err := s.Add("u1", product("p1", "Gaze"), 1); err != nil {
		t.Errorf("expected cart usable again, got %v", err)
	}
}

func TestFinishCheckoutFailureKeepsCart(t *testing.T) {
	s := NewStore()
	s.Add("u1", product("p1", "Gaze"), 2)

	s.BeginCheckout("u1")
	s.FinishCheckout("u1", false)

	items := s.Items("u1")
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("expected cart preserved after failed checkout, got %+v", items)
	}
}
