package memory

import (
	"context"
	"sync"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
)

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewCartRepository creates an in-memory cart repository. Carts live for
// the process lifetime only, matching the session-scoped persistence the
// storefront promises.
func NewCartRepository() *cartRepository {
	return &cartRepository{carts: make(map[string]domain.Cart)}
}

func (r *cartRepository) Load(ctx context.Context, ownerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return nil, nil
	}
	cp := cart
	cp.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(cp.Lines, cart.Lines)
	return &cp, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *cart
	cp.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(cp.Lines, cart.Lines)
	r.carts[cart.OwnerID] = cp
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, ownerID)
	return nil
}
