package memory

import (
	"time"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
)

// demoCatalog is the fixed product set served when no database is
// configured. Product "1" keeps the 29.99 base price the checkout flow has
// always assumed.
func demoCatalog() []domain.Product {
	now := time.Now()
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Classic Clear Case",
			Description: "Slim transparent case that shows off your phone while protecting it from drops and scratches.",
			Price:       29.99,
			Stock:       100,
			Category:    "phone-cases",
			ImageURL:    "/images/products/classic-clear.jpg",
			Featured:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Rugged Armor Case",
			Description: "Dual-layer shockproof case with reinforced corners, rated for 3m drops.",
			Price:       39.99,
			Stock:       75,
			Category:    "phone-cases",
			ImageURL:    "/images/products/rugged-armor.jpg",
			Featured:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Leather Wallet Case",
			Description: "Genuine leather folio with three card slots and a magnetic clasp.",
			Price:       49.99,
			Stock:       40,
			Category:    "phone-cases",
			ImageURL:    "/images/products/leather-wallet.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Matte Silicone Case",
			Description: "Soft-touch silicone case with a microfiber lining, available in twelve colors.",
			Price:       24.99,
			Stock:       120,
			Category:    "phone-cases",
			ImageURL:    "/images/products/matte-silicone.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "5",
			Name:        "Glitter Sparkle Case",
			Description: "Floating glitter case with a raised bezel to protect the screen.",
			Price:       27.99,
			Stock:       60,
			Category:    "phone-cases",
			ImageURL:    "/images/products/glitter-sparkle.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "6",
			Name:        "Carbon Fiber Case",
			Description: "Aramid fiber case, 0.65mm thin and lighter than a house key.",
			Price:       54.99,
			Stock:       30,
			Category:    "phone-cases",
			ImageURL:    "/images/products/carbon-fiber.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "7",
			Name:        "Tempered Glass Screen Protector",
			Description: "9H hardness tempered glass with oleophobic coating, two per pack.",
			Price:       14.99,
			Stock:       200,
			Category:    "accessories",
			ImageURL:    "/images/products/screen-protector.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "8",
			Name:        "MagSafe Ring Adapter",
			Description: "Adhesive magnetic ring that adds MagSafe charging to any case.",
			Price:       12.99,
			Stock:       150,
			Category:    "accessories",
			ImageURL:    "/images/products/magsafe-ring.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
