// Package cart holds the ephemeral per-user carts. Carts live only in
// process memory and are never persisted.
package cart

import (
	"errors"
	"sync"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// Cart errors.
var (
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")
)

type userCart struct {
	items      []model.CartItem
	processing bool
}

// Store keeps one cart per user ID.
type Store struct {
	mu    sync.Mutex
	carts map[string]*userCart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string]*userCart)}
}

func (s *Store) cart(userID string) *userCart {
	c, ok := s.carts[userID]
	if !ok {
		c = &userCart{}
		s.carts[userID] = c
	}
	return c
}

// Add puts quantity units of a product into the user's cart. If the product
// is already present the quantities accumulate into a single entry. Stock is
// deliberately not checked here.
func (s *Store) Add(userID string, product model.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	if c.processing {
		return ErrCheckoutInFlight
	}

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}

	c.items = append(c.items, model.CartItem{
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	})
	return nil
}

// Remove drops a product from the user's cart.
func (s *Store) Remove(userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	if c.processing {
		return ErrCheckoutInFlight
	}

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return nil
}

// Clear empties the user's cart.
func (s *Store) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	if c.processing {
		return ErrCheckoutInFlight
	}
	c.items = nil
	return nil
}

// Items returns a copy of the user's cart contents.
func (s *Store) Items(userID string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// BeginCheckout marks the cart as processing and returns a snapshot of its
// contents. While processing, a second checkout and all cart mutations are
// rejected.
func (s *Store) BeginCheckout(userID string) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	if c.processing {
		return nil, ErrCheckoutInFlight
	}
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}

	c.processing = true
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items, nil
}

// FinishCheckout clears the processing flag. On success the cart is emptied;
// on failure its contents are left unchanged for a manual retry.
func (s *Store) FinishCheckout(userID string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(userID)
	c.processing = false
	if success {
		c.items = nil
	}
}
