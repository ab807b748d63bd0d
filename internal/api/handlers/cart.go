package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/api/middleware"
	"github.com/kanwar911/BTP-case-craft/internal/cart"
	"github.com/kanwar911/BTP-case-craft/internal/checkout"
	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

const cartSessionCookie = "cart_session"

// cartOwnerID resolves the cart owner: the authenticated user, or an
// anonymous session cookie minted on first touch.
func cartOwnerID(c *gin.Context) string {
	if user, ok := middleware.GetUserFromContext(c); ok {
		return user.ID.String()
	}
	if sessionID, err := c.Cookie(cartSessionCookie); err == nil && sessionID != "" {
		return sessionID
	}
	sessionID := uuid.NewString()
	c.SetCookie(cartSessionCookie, sessionID, 0, "/", "", false, true)
	return sessionID
}

func cartStore(c *gin.Context, repos *repository.Repositories, logger *zap.Logger) *cart.Store {
	return cart.NewStore(c.Request.Context(), cartOwnerID(c), repos.Cart, logger)
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func toCartResponse(store *cart.Store) CartResponse {
	items := store.Items()
	if items == nil {
		items = []domain.CartLine{}
	}
	return CartResponse{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	}
}

type AddCartItemRequest struct {
	ProductID     string                `json:"productId" binding:"required"`
	Customization *domain.Customization `json:"customization,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// HandleGetCart handles GET /api/cart
func HandleGetCart(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartStore(c, repos, logger)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// HandleAddCartItem handles POST /api/cart/items. Adding the same product
// again increments the existing line, clamped at the quantity limit.
func HandleAddCartItem(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		product, err := repos.Product.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to resolve product for cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		store := cartStore(c, repos, logger)
		store.AddItem(c.Request.Context(), *product)
		if req.Customization != nil {
			store.SetCustomization(c.Request.Context(), product.ID, *req.Customization)
		}

		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// HandleUpdateCartItem handles PATCH /api/cart/items/:productId. Quantity
// is clamped to the allowed range; a quantity below 1 removes the line.
func HandleUpdateCartItem(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		store := cartStore(c, repos, logger)
		store.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// HandleRemoveCartItem handles DELETE /api/cart/items/:productId
func HandleRemoveCartItem(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartStore(c, repos, logger)
		store.RemoveItem(c.Request.Context(), c.Param("productId"))
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// HandleClearCart handles DELETE /api/cart
func HandleClearCart(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartStore(c, repos, logger)
		store.Clear(c.Request.Context())
		c.JSON(http.StatusOK, toCartResponse(store))
	}
}

// HandleCartSummary handles GET /api/cart/summary, the order preview on the
// cart page. It uses the same tax rate as checkout so the preview and the
// final order always agree.
func HandleCartSummary(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartStore(c, repos, logger)
		subtotal := store.TotalPrice()

		calc := checkout.NewCalculator(
			repos.Product,
			cfg.Checkout.TaxRate,
			cfg.Checkout.ShippingFlat,
			cfg.Checkout.FreeShippingAbove,
			logger,
		)
		shipping, tax, total := calc.PreviewTotals(subtotal)

		c.JSON(http.StatusOK, gin.H{
			"totalItems": store.TotalItems(),
			"subtotal":   money(subtotal),
			"shipping":   money(shipping),
			"tax":        money(tax),
			"total":      money(total),
		})
	}
}
