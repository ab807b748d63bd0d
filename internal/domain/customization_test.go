package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomizationSurcharge(t *testing.T) {
	t.Run("EmptyHasNoSurcharge", func(t *testing.T) {
		c := Customization{}
		assert.True(t, c.IsZero())
		assert.Zero(t, c.Surcharge())
		assert.Empty(t, c.Kinds())
	})

	t.Run("SingleOptions", func(t *testing.T) {
		assert.InDelta(t, 5.00, Customization{Text: "hi"}.Surcharge(), 1e-9)
		assert.InDelta(t, 3.00, Customization{ColorID: "red"}.Surcharge(), 1e-9)
		assert.InDelta(t, 2.00, Customization{PatternID: "dots"}.Surcharge(), 1e-9)
		assert.InDelta(t, 8.00, Customization{Design: "comet"}.Surcharge(), 1e-9)
	})

	t.Run("OptionsStackAdditively", func(t *testing.T) {
		c := Customization{Text: "hi", ColorID: "red", PatternID: "dots", Design: "comet"}
		assert.InDelta(t, 18.00, c.Surcharge(), 1e-9)
		assert.Len(t, c.Kinds(), 4)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	t.Run("HappyPath", func(t *testing.T) {
		assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
		assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusShipped))
		assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))
	})

	t.Run("CancellableBeforeShipment", func(t *testing.T) {
		assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
		assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusCancelled))
		assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
	})

	t.Run("TerminalStates", func(t *testing.T) {
		for _, to := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
			assert.False(t, OrderStatusDelivered.CanTransitionTo(to))
			assert.False(t, OrderStatusCancelled.CanTransitionTo(to))
		}
	})

	t.Run("Validity", func(t *testing.T) {
		assert.True(t, OrderStatusPending.IsValid())
		assert.False(t, OrderStatus("unknown").IsValid())
	})
}
