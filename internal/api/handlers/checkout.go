package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/api/middleware"
	"github.com/kanwar911/BTP-case-craft/internal/checkout"
	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/internal/service"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	Items        []checkout.ItemRequest `json:"items" binding:"required,min=1"`
	CustomerInfo CustomerInfo           `json:"customerInfo" binding:"required"`
	PaymentInfo  *checkout.PaymentInfo  `json:"paymentInfo,omitempty"`
}

type CustomerInfo struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CheckoutResponse represents the successful checkout response
type CheckoutResponse struct {
	Success      bool          `json:"success"`
	OrderID      string        `json:"orderId"`
	RedirectURL  string        `json:"redirectUrl"`
	Order        OrderResponse `json:"order"`
	OrderSummary OrderSummary  `json:"orderSummary"`
}

// OrderSummary carries the priced breakdown. Money fields are formatted to
// two decimals, matching what the order history page stores.
type OrderSummary struct {
	Subtotal  string              `json:"subtotal"`
	Shipping  string              `json:"shipping"`
	Tax       string              `json:"tax"`
	Total     string              `json:"total"`
	LineItems []checkout.LineItem `json:"lineItems"`
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// HandleCheckout handles POST /api/checkout
func HandleCheckout(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No items provided"})
			return
		}

		userID := middleware.UserIDOrGuest(c)
		logger.Info("Starting checkout",
			zap.String("user_id", userID),
			zap.Int("item_count", len(req.Items)))

		calc := checkout.NewCalculator(
			repos.Product,
			cfg.Checkout.TaxRate,
			cfg.Checkout.ShippingFlat,
			cfg.Checkout.FreeShippingAbove,
			logger,
		)
		summary, err := calc.Price(c.Request.Context(), req.Items)
		if err != nil {
			if vErr, ok := err.(*errors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
				return
			}
			logger.Error("Checkout pricing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create order",
				"details": err.Error(),
			})
			return
		}

		// Validate payment information if provided. Any failure rejects the
		// whole checkout; no partial order is created.
		paymentMethod := "Credit Card"
		if req.PaymentInfo != nil {
			if err := checkout.ValidatePayment(*req.PaymentInfo, time.Now()); err != nil {
				if vErr, ok := err.(*errors.ErrValidation); ok {
					c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
					return
				}
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			digits := req.PaymentInfo.CardNumber
			if len(digits) >= 4 {
				paymentMethod = fmt.Sprintf("Card ending in %s", digits[len(digits)-4:])
			}
		}

		address := domain.Address{
			Street:     req.CustomerInfo.Address,
			City:       req.CustomerInfo.City,
			State:      req.CustomerInfo.State,
			PostalCode: req.CustomerInfo.PostalCode,
			Country:    req.CustomerInfo.Country,
		}

		orderService := service.NewOrderService(repos, logger)
		order, err := orderService.CreateOrder(c.Request.Context(), userID, summary, address, paymentMethod)
		if err != nil {
			logger.Error("Failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create order",
				"details": err.Error(),
			})
			return
		}

		logger.Info("Order created", zap.String("order_id", order.ID))

		c.JSON(http.StatusOK, CheckoutResponse{
			Success:     true,
			OrderID:     order.ID,
			RedirectURL: fmt.Sprintf("%s/checkout/success?order_id=%s", cfg.AppURL, order.ID),
			Order:       toOrderResponse(order),
			OrderSummary: OrderSummary{
				Subtotal:  money(summary.Subtotal),
				Shipping:  money(summary.Shipping),
				Tax:       money(summary.Tax),
				Total:     money(summary.Total),
				LineItems: summary.LineItems,
			},
		})
	}
}
