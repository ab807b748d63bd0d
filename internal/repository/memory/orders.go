package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

type orderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewOrderRepository creates an in-memory order repository.
func NewOrderRepository() *orderRepository {
	return &orderRepository{orders: make(map[string]*domain.Order)}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return &errors.ErrConflict{Message: "order already exists: " + order.ID}
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	cp := *order
	cp.Lines = make([]domain.OrderLine, len(order.Lines))
	copy(cp.Lines, order.Lines)
	r.orders[order.ID] = &cp
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id}
	}
	cp := *order
	cp.Lines = make([]domain.OrderLine, len(order.Lines))
	copy(cp.Lines, order.Lines)
	return &cp, nil
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []*domain.Order{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	out := make([]*domain.Order, len(matched))
	for i, order := range matched {
		cp := *order
		cp.Lines = make([]domain.OrderLine, len(order.Lines))
		copy(cp.Lines, order.Lines)
		out[i] = &cp
	}
	return out, nil
}
