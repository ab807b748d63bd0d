package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository/memory"
)

func testProduct(id string, price float64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Case " + id,
		Price:    price,
		Stock:    100,
		Category: "phone-cases",
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), "owner-1", memory.NewCartRepository(), zap.NewNop())
}

func TestStoreAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("NewLine", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "1", items[0].ProductID)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("SameProductMergesLine", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.AddItem(ctx, testProduct("1", 29.99))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("ClampsAtMaxQuantity", func(t *testing.T) {
		s := newTestStore(t)
		for i := 0; i < 15; i++ {
			s.AddItem(ctx, testProduct("1", 29.99))
		}

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, MaxQuantity, items[0].Quantity)
	})

	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("3", 10))
		s.AddItem(ctx, testProduct("1", 20))
		s.AddItem(ctx, testProduct("2", 30))
		s.AddItem(ctx, testProduct("1", 20))

		items := s.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "3", items[0].ProductID)
		assert.Equal(t, "1", items[1].ProductID)
		assert.Equal(t, "2", items[2].ProductID)
	})
}

func TestStoreUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("SetsExactQuantityInRange", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))

		for q := MinQuantity; q <= MaxQuantity; q++ {
			s.UpdateQuantity(ctx, "1", q)
			items := s.Items()
			require.Len(t, items, 1)
			assert.Equal(t, q, items[0].Quantity)
		}
	})

	t.Run("ClampsAboveMax", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.UpdateQuantity(ctx, "1", 25)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, MaxQuantity, items[0].Quantity)
	})

	t.Run("BelowMinRemovesLine", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.UpdateQuantity(ctx, "1", 0)
		assert.Empty(t, s.Items())

		s.AddItem(ctx, testProduct("1", 29.99))
		s.UpdateQuantity(ctx, "1", -3)
		assert.Empty(t, s.Items())
	})

	t.Run("NoOpForAbsentLine", func(t *testing.T) {
		s := newTestStore(t)
		s.UpdateQuantity(ctx, "missing", 5)
		assert.Empty(t, s.Items())
	})
}

func TestStoreRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesLine", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.AddItem(ctx, testProduct("2", 39.99))
		s.RemoveItem(ctx, "1")

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ProductID)
	})

	t.Run("NoOpIfAbsent", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.RemoveItem(ctx, "missing")
		assert.Len(t, s.Items(), 1)
	})
}

func TestStoreTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputedAfterEveryMutation", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.AddItem(ctx, testProduct("1", 29.99))
		s.AddItem(ctx, testProduct("2", 10.00))

		assert.Equal(t, 3, s.TotalItems())
		assert.InDelta(t, 29.99*2+10.00, s.TotalPrice(), 1e-9)

		s.UpdateQuantity(ctx, "2", 4)
		assert.Equal(t, 6, s.TotalItems())
		assert.InDelta(t, 29.99*2+10.00*4, s.TotalPrice(), 1e-9)

		// Idempotent read
		assert.InDelta(t, s.TotalPrice(), s.TotalPrice(), 1e-9)
	})

	t.Run("CustomizationExcludedFromSubtotal", func(t *testing.T) {
		s := newTestStore(t)
		s.AddItem(ctx, testProduct("1", 29.99))
		s.SetCustomization(ctx, "1", domain.Customization{Text: "hello"})

		assert.InDelta(t, 29.99, s.TotalPrice(), 1e-9)
	})
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(t)
	s.AddItem(ctx, testProduct("1", 29.99))
	s.AddItem(ctx, testProduct("2", 39.99))
	s.Clear(ctx)

	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalItems())
	assert.Zero(t, s.TotalPrice())
}

func TestStorePersistence(t *testing.T) {
	ctx := context.Background()
	persist := memory.NewCartRepository()

	s1 := NewStore(ctx, "owner-1", persist, zap.NewNop())
	s1.AddItem(ctx, testProduct("1", 29.99))
	s1.UpdateQuantity(ctx, "1", 3)

	// A fresh store for the same owner sees the persisted cart
	s2 := NewStore(ctx, "owner-1", persist, zap.NewNop())
	items := s2.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	// Another owner starts empty
	s3 := NewStore(ctx, "owner-2", persist, zap.NewNop())
	assert.Empty(t, s3.Items())
}

func TestStoreSubscribers(t *testing.T) {
	ctx := context.Background()

	s := newTestStore(t)
	var notified []int
	s.Subscribe(func(cart domain.Cart) {
		notified = append(notified, cart.TotalItems())
	})

	s.AddItem(ctx, testProduct("1", 29.99))
	s.AddItem(ctx, testProduct("1", 29.99))
	s.RemoveItem(ctx, "1")
	s.Clear(ctx)

	// One synchronous notification per mutation
	assert.Equal(t, []int{1, 2, 0, 0}, notified)
}
