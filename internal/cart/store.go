package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
)

const (
	// MinQuantity and MaxQuantity bound a cart line's quantity. Requests
	// outside the range are clamped, not rejected.
	MinQuantity = 1
	MaxQuantity = 10
)

// Subscriber is notified synchronously after every cart mutation.
type Subscriber func(cart domain.Cart)

// Store maintains one shopper's cart. Mutations persist through the injected
// CartRepository and notify subscribers; persistence failures are logged and
// never block the mutation, since the in-memory cart remains authoritative
// for the session.
type Store struct {
	mu          sync.Mutex
	cart        domain.Cart
	persist     repository.CartRepository
	subscribers []Subscriber
	logger      *zap.Logger
}

// NewStore creates a store for ownerID, loading any previously persisted
// cart. A missing cart is not an error; the store starts empty.
func NewStore(ctx context.Context, ownerID string, persist repository.CartRepository, logger *zap.Logger) *Store {
	s := &Store{
		cart:    domain.Cart{OwnerID: ownerID},
		persist: persist,
		logger:  logger,
	}
	if persist != nil {
		if saved, err := persist.Load(ctx, ownerID); err == nil && saved != nil {
			s.cart = *saved
		}
	}
	return s
}

// Subscribe registers a subscriber for cart change notifications.
// Subscribers run with the store lock held and must not call back into
// the store.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// AddItem adds one unit of product to the cart. If a line for the product
// already exists its quantity is incremented, clamped at MaxQuantity;
// otherwise a new line is appended with quantity 1. Stock is not enforced
// here; that is the caller's responsibility.
func (s *Store) AddItem(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == product.ID {
			if s.cart.Lines[i].Quantity < MaxQuantity {
				s.cart.Lines[i].Quantity++
			}
			s.commit(ctx)
			return
		}
	}

	s.cart.Lines = append(s.cart.Lines, domain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Category:  product.Category,
		Quantity:  1,
	})
	s.commit(ctx)
}

// RemoveItem deletes the line for productID. No-op if absent.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			s.commit(ctx)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity, clamped to MaxQuantity. A
// requested quantity below MinQuantity removes the line. No-op if the line
// is absent.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity < MinQuantity {
		s.RemoveItem(ctx, productID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			s.cart.Lines[i].Quantity = quantity
			s.commit(ctx)
			return
		}
	}
}

// SetCustomization attaches add-on options to an existing line. A zero
// customization clears it. No-op if the line is absent.
func (s *Store) SetCustomization(ctx context.Context, productID string, c domain.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			if c.IsZero() {
				s.cart.Lines[i].Customization = nil
			} else {
				s.cart.Lines[i].Customization = &c
			}
			s.commit(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Lines = nil
	if s.persist != nil {
		if err := s.persist.Delete(ctx, s.cart.OwnerID); err != nil {
			s.logger.Warn("Failed to delete persisted cart",
				zap.Error(err),
				zap.String("owner_id", s.cart.OwnerID))
		}
	}
	s.cart.UpdatedAt = time.Now()
	s.notify()
}

// Items returns a copy of the current cart lines in insertion order.
func (s *Store) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines
}

// TotalItems returns the sum of line quantities, recomputed on read.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// TotalPrice returns the cart subtotal, recomputed on read. Customization
// surcharges are excluded; they apply at checkout.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

// Snapshot returns a copy of the whole cart.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyCart()
}

// commit persists the cart and notifies subscribers. Callers must hold mu.
func (s *Store) commit(ctx context.Context) {
	s.cart.UpdatedAt = time.Now()
	if s.persist != nil {
		if err := s.persist.Save(ctx, &s.cart); err != nil {
			s.logger.Warn("Failed to persist cart",
				zap.Error(err),
				zap.String("owner_id", s.cart.OwnerID))
		}
	}
	s.notify()
}

// notify calls subscribers synchronously with a copy of the cart. Callers
// must hold mu.
func (s *Store) notify() {
	snapshot := s.copyCart()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

func (s *Store) copyCart() domain.Cart {
	snapshot := s.cart
	snapshot.Lines = make([]domain.CartLine, len(s.cart.Lines))
	copy(snapshot.Lines, s.cart.Lines)
	return snapshot
}
