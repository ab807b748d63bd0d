package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/api/middleware"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/internal/service"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	Status          domain.OrderStatus `json:"status"`
	Items           []OrderLineItem    `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	Shipping        float64            `json:"shipping"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	ShippingAddress domain.Address     `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

type OrderLineItem struct {
	ProductID     string                `json:"product_id"`
	Name          string                `json:"name"`
	Quantity      int                   `json:"quantity"`
	UnitPrice     float64               `json:"unit_price"`
	TotalPrice    float64               `json:"total_price"`
	Customization *domain.Customization `json:"customization,omitempty"`
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderLineItem, 0, len(order.Lines))
	for _, l := range order.Lines {
		items = append(items, OrderLineItem{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			TotalPrice:    l.TotalPrice,
			Customization: l.Customization,
		})
	}
	return OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Status:          order.Status,
		Items:           items,
		Subtotal:        order.Subtotal,
		Shipping:        order.Shipping,
		Tax:             order.Tax,
		Total:           order.Total,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       order.UpdatedAt.Format(time.RFC3339),
	}
}

// HandleListOrders handles GET /api/orders
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		orderService := service.NewOrderService(repos, logger)
		orders, err := orderService.ListOrders(c.Request.Context(), user.ID.String(), limit, offset)
		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		out := make([]OrderResponse, 0, len(orders))
		for _, order := range orders {
			out = append(out, toOrderResponse(order))
		}
		c.JSON(http.StatusOK, out)
	}
}

// HandleGetOrder handles GET /api/orders/:id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		orderID := c.Param("id")
		orderService := service.NewOrderService(repos, logger)
		order, err := orderService.GetOrder(c.Request.Context(), user.ID.String(), orderID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("Failed to get order", zap.Error(err), zap.String("order_id", orderID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, toOrderResponse(order))
	}
}
