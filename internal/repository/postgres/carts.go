package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
)

type cartRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB, logger *zap.Logger) *cartRepository {
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cartRepository) Load(ctx context.Context, ownerID string) (*domain.Cart, error) {
	query := `SELECT owner_id, lines, updated_at FROM carts WHERE owner_id = $1`

	var cart domain.Cart
	var linesJSON []byte
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&cart.OwnerID,
		&linesJSON,
		&cart.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		// Missing cart is not an error; the store starts empty
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to load cart", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, err
	}

	if err := json.Unmarshal(linesJSON, &cart.Lines); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	query := `
		INSERT INTO carts (owner_id, lines, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE SET lines = $2, updated_at = $3
	`

	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, cart.OwnerID, linesJSON, cart.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to save cart", zap.Error(err), zap.String("owner_id", cart.OwnerID))
		return err
	}

	return nil
}

func (r *cartRepository) Delete(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE owner_id = $1`, ownerID)
	if err != nil {
		r.logger.Error("Failed to delete cart", zap.Error(err), zap.String("owner_id", ownerID))
		return err
	}
	return nil
}
