package memory

import "github.com/kanwar911/BTP-case-craft/internal/repository"

// NewRepositories builds the in-memory repository set used in demo mode and
// in tests. The product repository is seeded with the demo catalog.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Product: NewSeededProductRepository(),
		Cart:    NewCartRepository(),
		Order:   NewOrderRepository(),
		User:    NewUserRepository(),
	}
}
