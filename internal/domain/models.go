package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a phone case in the catalog
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImageURL    string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CartLine is one product entry in a shopping cart. Line identity is the
// product ID: adding the same product again merges into the existing line.
type CartLine struct {
	ProductID     string         `json:"product_id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	ImageURL      string         `json:"image_url,omitempty"`
	Category      string         `json:"category,omitempty"`
	Quantity      int            `json:"quantity"`
	Customization *Customization `json:"customization,omitempty"`
}

// Cart holds a shopper's intended purchases. Lines keep insertion order
// for display.
type Cart struct {
	OwnerID   string     `json:"owner_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity over all lines. Customization
// surcharges are not part of the cart subtotal; they are applied at checkout.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Address is a shipping address
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Order represents a placed order
type Order struct {
	ID              string
	UserID          string
	Status          OrderStatus
	Lines           []OrderLine
	Subtotal        float64
	Shipping        float64
	Tax             float64
	Total           float64
	ShippingAddress Address
	PaymentMethod   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderLine is a priced line in an order. UnitPrice includes customization
// surcharges, unlike the cart subtotal.
type OrderLine struct {
	ProductID     string         `json:"product_id"`
	Name          string         `json:"name"`
	Quantity      int            `json:"quantity"`
	UnitPrice     float64        `json:"unit_price"`
	TotalPrice    float64        `json:"total_price"`
	Customization *Customization `json:"customization,omitempty"`
}

// User represents a registered customer
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FullName     string
	PasswordHash string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GuestUserID attributes orders placed without a valid session.
const GuestUserID = "guest"
