package domain

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	// PENDING - order created, payment not yet captured
	OrderStatusPending OrderStatus = "pending"
	// PROCESSING - payment accepted, order being prepared
	OrderStatusProcessing OrderStatus = "processing"
	// SHIPPED - order handed to the carrier
	OrderStatusShipped OrderStatus = "shipped"
	// DELIVERED - order received by the customer
	OrderStatusDelivered OrderStatus = "delivered"
	// CANCELLED - order cancelled before shipment
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusProcessing ||
			newStatus == OrderStatusCancelled
	case OrderStatusProcessing:
		return newStatus == OrderStatusShipped ||
			newStatus == OrderStatusCancelled
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	default:
		return false
	}
}
