package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/checkout"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

type orderService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, logger *zap.Logger) *orderService {
	return &orderService{
		repos:  repos,
		logger: logger,
	}
}

// NewOrderID generates a time-based order identifier with a random suffix.
// Not globally unique by construction, only collision-improbable.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}

// CreateOrder persists an order built from a priced checkout summary.
func (s *orderService) CreateOrder(
	ctx context.Context,
	userID string,
	summary *checkout.Summary,
	address domain.Address,
	paymentMethod string,
) (*domain.Order, error) {
	if userID == "" {
		userID = domain.GuestUserID
	}

	lines := make([]domain.OrderLine, 0, len(summary.LineItems))
	for _, li := range summary.LineItems {
		line := domain.OrderLine{
			ProductID:  li.ProductID,
			Name:       li.Name,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice,
			TotalPrice: li.TotalPrice,
		}
		if !li.Customization.IsZero() {
			c := li.Customization
			line.Customization = &c
		}
		lines = append(lines, line)
	}

	now := time.Now()
	order := &domain.Order{
		ID:              NewOrderID(),
		UserID:          userID,
		Status:          domain.OrderStatusProcessing,
		Lines:           lines,
		Subtotal:        summary.Subtotal,
		Shipping:        summary.Shipping,
		Tax:             summary.Tax,
		Total:           summary.Total,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.logger.Info("Creating order",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("line_count", len(lines)),
		zap.Float64("total", order.Total))

	if err := s.repos.Order.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err), zap.String("order_id", order.ID))
		return nil, err
	}

	return order, nil
}

// GetOrder fetches an order and verifies the caller owns it.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.repos.Order.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, &errors.ErrNotFound{Resource: "order", ID: orderID}
	}
	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID string, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repos.Order.ListByUserID(ctx, userID, limit, offset)
}
