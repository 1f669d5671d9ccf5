package core

import (
	"sort"
	"sync"

	"reseller-portal-go/internal/models"
)

// cartService keeps one in-memory cart per owner. Carts are a
// convenience, not a durable order: they do not survive a restart and
// nothing in the API promises otherwise.
type cartService struct {
	mu    sync.RWMutex
	carts map[string]map[string]*models.CartItem
}

// NewCartService creates an empty in-memory cart store.
func NewCartService() CartService {
	return &cartService{
		carts: make(map[string]map[string]*models.CartItem),
	}
}

// Add inserts the item with quantity 1, or increments the quantity when
// the product is already present. It never fails.
func (s *cartService) Add(ownerID string, item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[ownerID]
	if !ok {
		cart = make(map[string]*models.CartItem)
		s.carts[ownerID] = cart
	}

	if existing, ok := cart[item.ProductID]; ok {
		existing.Quantity++
		return
	}
	item.Quantity = 1
	cart[item.ProductID] = &item
}

// Remove deletes the entry if present; a no-op when absent.
func (s *cartService) Remove(ownerID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[ownerID]; ok {
		delete(cart, productID)
	}
}

// Clear empties the owner's cart.
func (s *cartService) Clear(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, ownerID)
}

// Items returns the cart entries in a stable order.
func (s *cartService) Items(ownerID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[ownerID]
	items := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})
	return items
}

// Total recomputes the cart total on every read; it is never stored.
func (s *cartService) Total(ownerID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.carts[ownerID] {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}
