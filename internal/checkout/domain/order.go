package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPaymentDeclined = errors.New("payment declined")
)

// OrderItem is the line snapshot frozen into an order at checkout time.
// Catalog changes after the fact do not rewrite history.
type OrderItem struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	Price         int64  `json:"price"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selected_color"`
}

// Order represents a confirmed checkout
type Order struct {
	ID            string         `json:"id" gorm:"primaryKey"` // ORD-xxxxxxxx
	SessionID     string         `json:"-" gorm:"not null;index"`
	Items         []OrderItem    `json:"items" gorm:"serializer:json"`
	ItemsCount    int            `json:"items_count"`
	Subtotal      int64          `json:"subtotal"`
	Shipping      int64          `json:"shipping"`
	VAT           int64          `json:"vat"`
	Total         int64          `json:"total"`
	Currency      string         `json:"currency" gorm:"default:'NGN'"`
	Status        string         `json:"status" gorm:"index"` // completed, in_progress, cancelled
	PaymentMethod string         `json:"payment_method"`
	TransactionID string         `json:"transaction_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Order statuses, matching the storefront's order-history tabs.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s names a known order status.
func ValidStatus(s string) bool {
	return s == StatusCompleted || s == StatusInProgress || s == StatusCancelled
}

// Payment methods offered on the checkout page.
const (
	MethodCreditCard = "credit-card"
	MethodPayPal     = "paypal"
)

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id string) (*Order, error)
	FindBySession(sessionID, status string, limit, offset int) ([]Order, error)
	CountBySession(sessionID, status string) (int64, error)
}

// PaymentRequest is what the gateway needs to authorize a charge.
type PaymentRequest struct {
	OrderID       string
	Amount        int64
	Currency      string
	PaymentMethod string
}

// Receipt is the gateway's proof of a successful authorization.
type Receipt struct {
	TransactionID string
	AuthorizedAt  time.Time
}

// PaymentGateway is the external payment collaborator. Authorize blocks
// until a decision; it must honor ctx cancellation so a torn-down
// request never runs completion side effects.
type PaymentGateway interface {
	Authorize(ctx context.Context, req PaymentRequest) (*Receipt, error)
}
