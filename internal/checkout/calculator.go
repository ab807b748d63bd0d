package checkout

import (
	"context"

	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

// ItemRequest is one requested line at checkout.
type ItemRequest struct {
	ProductID     string                `json:"productId" binding:"required"`
	Quantity      int                   `json:"quantity" binding:"required,min=1"`
	Customization *domain.Customization `json:"customization,omitempty"`
}

// LineItem is a priced line in the order summary. UnitPrice includes
// customization surcharges.
type LineItem struct {
	ProductID     string               `json:"productId"`
	Name          string               `json:"name"`
	Quantity      int                  `json:"quantity"`
	UnitPrice     float64              `json:"unitPrice"`
	TotalPrice    float64              `json:"totalPrice"`
	Customization domain.Customization `json:"customization"`
}

// Summary is the priced breakdown produced by checkout.
type Summary struct {
	Subtotal  float64
	Shipping  float64
	Tax       float64
	Total     float64
	LineItems []LineItem
}

// ProductResolver resolves a product ID to its catalog entry.
type ProductResolver interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Calculator prices a set of requested items into an order summary.
type Calculator struct {
	products          ProductResolver
	taxRate           float64
	shippingFlat      float64
	freeShippingAbove float64
	logger            *zap.Logger
}

// NewCalculator creates a checkout calculator.
func NewCalculator(products ProductResolver, taxRate, shippingFlat, freeShippingAbove float64, logger *zap.Logger) *Calculator {
	return &Calculator{
		products:          products,
		taxRate:           taxRate,
		shippingFlat:      shippingFlat,
		freeShippingAbove: freeShippingAbove,
		logger:            logger,
	}
}

// Price resolves and prices the requested items. Items whose product cannot
// be resolved are skipped with a logged diagnostic; checkout proceeds on the
// resolvable lines. If no line resolves, the whole checkout fails.
func (c *Calculator) Price(ctx context.Context, items []ItemRequest) (*Summary, error) {
	if len(items) == 0 {
		return nil, &errors.ErrValidation{Message: "No items provided"}
	}

	subtotal := 0.0
	lineItems := make([]LineItem, 0, len(items))

	for _, item := range items {
		product, err := c.products.GetByID(ctx, item.ProductID)
		if err != nil {
			c.logger.Warn("Skipping unresolvable checkout item",
				zap.String("product_id", item.ProductID),
				zap.Error(err))
			continue
		}

		unitPrice := product.Price
		name := product.Name
		customization := domain.Customization{}
		if item.Customization != nil {
			customization = *item.Customization
			unitPrice += customization.Surcharge()
			name = customization.Label(name)
		}

		lineTotal := unitPrice * float64(item.Quantity)
		subtotal += lineTotal

		lineItems = append(lineItems, LineItem{
			ProductID:     item.ProductID,
			Name:          name,
			Quantity:      item.Quantity,
			UnitPrice:     unitPrice,
			TotalPrice:    lineTotal,
			Customization: customization,
		})
	}

	if len(lineItems) == 0 {
		return nil, &errors.ErrValidation{Message: "Failed to process any items"}
	}

	shipping := c.shippingFlat
	if subtotal >= c.freeShippingAbove {
		shipping = 0
	}
	tax := subtotal * c.taxRate

	return &Summary{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal + shipping + tax,
		LineItems: lineItems,
	}, nil
}

// PreviewTotals prices the current cart contents for the cart page summary.
// It uses the same tax rate as checkout so the preview and the final order
// agree.
func (c *Calculator) PreviewTotals(subtotal float64) (shipping, tax, total float64) {
	shipping = c.shippingFlat
	if subtotal >= c.freeShippingAbove {
		shipping = 0
	}
	tax = subtotal * c.taxRate
	return shipping, tax, subtotal + shipping + tax
}
