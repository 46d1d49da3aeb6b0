package domain

import (
	"context"
	"errors"

	catalog "github.com/voltshop/storefront/internal/catalog/domain"
)

// MinQuantity is the floor every line quantity clamps to.
const MinQuantity = 1

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrColorRequired   = errors.New("color variant is required")
	ErrUnknownColor    = errors.New("product does not offer that color variant")
)

// LineItem is a product snapshot in the cart plus the quantity and color
// variant chosen at add time. Line identity is the (product id, color)
// pair: the same product in two colors is two lines.
type LineItem struct {
	catalog.Product
	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor"`
}

// LineTotal returns price times quantity for this line. Prices are whole
// naira, so the multiplication is exact.
func (li LineItem) LineTotal() int64 {
	return li.Price * int64(li.Quantity)
}

// Cart holds a session's line items. It is a plain value: all mutation
// goes through the methods below, and persistence is the repository's
// concern. A session has exactly one logical writer, so Cart needs no
// locking.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add puts quantity units of the product in the given color into the
// cart. An existing (id, color) line absorbs the quantity; otherwise a
// new line is appended. Quantities below MinQuantity are rejected.
func (c *Cart) Add(product catalog.Product, quantity int, color string) error {
	if quantity < MinQuantity {
		return ErrInvalidQuantity
	}
	if color == "" {
		return ErrColorRequired
	}

	for i := range c.Items {
		if c.Items[i].ID == product.ID && c.Items[i].SelectedColor == color {
			c.Items[i].Quantity += quantity
			return nil
		}
	}

	c.Items = append(c.Items, LineItem{
		Product:       product,
		Quantity:      quantity,
		SelectedColor: color,
	})
	return nil
}

// Remove deletes every line for the product id, across ALL color
// variants. The storefront's remove button is product-level even though
// add is variant-level; the asymmetry is kept on purpose. Removing an
// absent id is a no-op.
func (c *Cart) Remove(productID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity applies delta to every line of the product id (all
// color variants), clamping at MinQuantity. Decrement never removes a
// line. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	for i := range c.Items {
		if c.Items[i].ID != productID {
			continue
		}
		q := c.Items[i].Quantity + delta
		if q < MinQuantity {
			q = MinQuantity
		}
		c.Items[i].Quantity = q
	}
}

// Count returns the sum of quantities across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the sum of line totals.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartRepository defines the contract for cart persistence. Load returns
// an empty cart for unknown sessions; implementations must degrade
// malformed stored data to an empty cart rather than fail the request.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
	Clear(ctx context.Context, sessionID string) error
}
