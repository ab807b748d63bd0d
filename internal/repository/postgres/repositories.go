package postgres

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/repository"
)

// NewRepositories creates all PostgreSQL-backed repositories
func NewRepositories(db *sql.DB, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		Product: NewProductRepository(db, logger),
		Cart:    NewCartRepository(db, logger),
		Order:   NewOrderRepository(db, logger),
		User:    NewUserRepository(db, logger),
	}
}
