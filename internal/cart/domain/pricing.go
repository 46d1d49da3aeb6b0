package domain

// Flat order fees in whole naira. There is no weight, distance, or
// jurisdiction logic; an empty cart owes nothing.
const (
	ShippingFee int64 = 10_000
	VATFee      int64 = 3_000
)

// Summary is a display-ready breakdown of what the cart costs.
type Summary struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	VAT      int64 `json:"vat"`
	Total    int64 `json:"total"`
}

// Quote derives the order summary from the cart. It is a pure function
// recomputed on demand; inputs are small enough that caching would buy
// nothing.
func Quote(cart Cart) Summary {
	if cart.IsEmpty() {
		return Summary{}
	}

	subtotal := cart.Subtotal()
	return Summary{
		Subtotal: subtotal,
		Shipping: ShippingFee,
		VAT:      VATFee,
		Total:    subtotal + ShippingFee + VATFee,
	}
}
