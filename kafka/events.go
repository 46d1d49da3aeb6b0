package kafka

import "time"

// OrderPlacedEvent represents a confirmed checkout
type OrderPlacedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	SessionID     string    `json:"session_id"`
	ItemsCount    int       `json:"items_count"`
	Subtotal      int64     `json:"subtotal"`
	Shipping      int64     `json:"shipping"`
	VAT           int64     `json:"vat"`
	Total         int64     `json:"total"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
