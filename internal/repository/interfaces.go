package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
)

// ProductRepository defines product data access methods
type ProductRepository interface {
	List(ctx context.Context, category string, skip, limit int) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CartRepository is the persistence port for the cart store. The cart owner
// is either an authenticated user ID or an anonymous session ID.
type CartRepository interface {
	Load(ctx context.Context, ownerID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, ownerID string) error
}

// OrderRepository defines order data access methods
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, error)
}

// UserRepository defines user data access methods
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
	User    UserRepository
}
