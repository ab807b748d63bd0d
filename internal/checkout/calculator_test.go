package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository/memory"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	// Seeded catalog: product "1" priced 29.99
	return NewCalculator(memory.NewSeededProductRepository(), 0.08, 5.99, 50, zap.NewNop())
}

func TestCalculatorPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("TwoUnitsOverFreeShippingThreshold", func(t *testing.T) {
		calc := newTestCalculator(t)
		summary, err := calc.Price(ctx, []ItemRequest{
			{ProductID: "1", Quantity: 2},
		})
		require.NoError(t, err)

		assert.InDelta(t, 59.98, summary.Subtotal, 1e-9)
		assert.Zero(t, summary.Shipping)
		assert.InDelta(t, 4.7984, summary.Tax, 1e-9)
		assert.InDelta(t, 64.7784, summary.Total, 1e-9)

		require.Len(t, summary.LineItems, 1)
		assert.InDelta(t, 29.99, summary.LineItems[0].UnitPrice, 1e-9)
		assert.InDelta(t, 59.98, summary.LineItems[0].TotalPrice, 1e-9)
	})

	t.Run("TextSurchargeAddsFiveBeforeQuantity", func(t *testing.T) {
		calc := newTestCalculator(t)
		summary, err := calc.Price(ctx, []ItemRequest{
			{ProductID: "1", Quantity: 3, Customization: &domain.Customization{Text: "carpe diem"}},
		})
		require.NoError(t, err)

		require.Len(t, summary.LineItems, 1)
		assert.InDelta(t, 34.99, summary.LineItems[0].UnitPrice, 1e-9)
		assert.InDelta(t, 34.99*3, summary.LineItems[0].TotalPrice, 1e-9)
	})

	t.Run("SurchargesStackAdditively", func(t *testing.T) {
		calc := newTestCalculator(t)
		summary, err := calc.Price(ctx, []ItemRequest{
			{ProductID: "1", Quantity: 1, Customization: &domain.Customization{
				Text:      "hi",
				ColorID:   "red",
				PatternID: "dots",
				Design:    "comet",
			}},
		})
		require.NoError(t, err)

		// 29.99 + 5 + 3 + 2 + 8
		require.Len(t, summary.LineItems, 1)
		assert.InDelta(t, 47.99, summary.LineItems[0].UnitPrice, 1e-9)
	})

	t.Run("CustomizationDetailsInLineName", func(t *testing.T) {
		calc := newTestCalculator(t)
		summary, err := calc.Price(ctx, []ItemRequest{
			{ProductID: "1", Quantity: 1, Customization: &domain.Customization{
				ColorID:   "red",
				PatternID: "dots",
			}},
		})
		require.NoError(t, err)

		require.Len(t, summary.LineItems, 1)
		assert.Contains(t, summary.LineItems[0].Name, "Color ID: red")
		assert.Contains(t, summary.LineItems[0].Name, "Pattern ID: dots")
	})

	t.Run("ShippingBoundary", func(t *testing.T) {
		products := memory.NewProductRepository()
		require.NoError(t, products.Create(ctx, &domain.Product{ID: "exact", Name: "Exact", Price: 50.00}))
		require.NoError(t, products.Create(ctx, &domain.Product{ID: "under", Name: "Under", Price: 49.99}))
		calc := NewCalculator(products, 0.08, 5.99, 50, zap.NewNop())

		summary, err := calc.Price(ctx, []ItemRequest{{ProductID: "exact", Quantity: 1}})
		require.NoError(t, err)
		assert.Zero(t, summary.Shipping)

		summary, err = calc.Price(ctx, []ItemRequest{{ProductID: "under", Quantity: 1}})
		require.NoError(t, err)
		assert.InDelta(t, 5.99, summary.Shipping, 1e-9)
	})

	t.Run("UnresolvableItemsSkipped", func(t *testing.T) {
		calc := newTestCalculator(t)
		summary, err := calc.Price(ctx, []ItemRequest{
			{ProductID: "1", Quantity: 1},
			{ProductID: "no-such-product", Quantity: 2},
		})
		require.NoError(t, err)

		require.Len(t, summary.LineItems, 1)
		assert.Equal(t, "1", summary.LineItems[0].ProductID)
		assert.InDelta(t, 29.99, summary.Subtotal, 1e-9)
	})

	t.Run("AllItemsUnresolvableFails", func(t *testing.T) {
		calc := newTestCalculator(t)
		_, err := calc.Price(ctx, []ItemRequest{
			{ProductID: "no-such-product", Quantity: 1},
		})
		require.Error(t, err)
		assert.EqualError(t, err, "Failed to process any items")
	})

	t.Run("NoItemsFails", func(t *testing.T) {
		calc := newTestCalculator(t)
		_, err := calc.Price(ctx, nil)
		require.Error(t, err)
		assert.EqualError(t, err, "No items provided")
	})
}

func TestPreviewTotals(t *testing.T) {
	calc := newTestCalculator(t)

	t.Run("FreeShippingAtThreshold", func(t *testing.T) {
		shipping, tax, total := calc.PreviewTotals(50.00)
		assert.Zero(t, shipping)
		assert.InDelta(t, 4.00, tax, 1e-9)
		assert.InDelta(t, 54.00, total, 1e-9)
	})

	t.Run("FlatShippingBelowThreshold", func(t *testing.T) {
		shipping, tax, total := calc.PreviewTotals(49.99)
		assert.InDelta(t, 5.99, shipping, 1e-9)
		assert.InDelta(t, 49.99*0.08, tax, 1e-9)
		assert.InDelta(t, 49.99+5.99+49.99*0.08, total, 1e-9)
	})
}
