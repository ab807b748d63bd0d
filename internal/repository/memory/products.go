package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

type productRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	nextID   int
}

// NewProductRepository creates an in-memory product repository.
func NewProductRepository() *productRepository {
	return &productRepository{
		products: make(map[string]*domain.Product),
		nextID:   1,
	}
}

// NewSeededProductRepository creates an in-memory product repository loaded
// with the demo phone-case catalog.
func NewSeededProductRepository() *productRepository {
	r := NewProductRepository()
	for _, p := range demoCatalog() {
		product := p
		r.products[product.ID] = &product
		r.nextID++
	}
	return r
}

func (r *productRepository) List(ctx context.Context, category string, skip, limit int) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		all = append(all, p)
	}
	// Numeric IDs sort numerically so the demo catalog lists in seed order.
	sort.Slice(all, func(i, j int) bool {
		a, errA := strconv.Atoi(all[i].ID)
		b, errB := strconv.Atoi(all[j].ID)
		if errA == nil && errB == nil {
			return a < b
		}
		return all[i].ID < all[j].ID
	})

	if skip >= len(all) {
		return []*domain.Product{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}

	out := make([]*domain.Product, len(all))
	for i, p := range all {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	cp := *p
	return &cp, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = strconv.Itoa(r.nextID)
	}
	if _, exists := r.products[product.ID]; exists {
		return &errors.ErrConflict{Message: "product already exists: " + product.ID}
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.nextID++

	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return &errors.ErrNotFound{Resource: "product", ID: product.ID}
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return &errors.ErrNotFound{Resource: "product", ID: id}
	}
	delete(r.products, id)
	return nil
}
