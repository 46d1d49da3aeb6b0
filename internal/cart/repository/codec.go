package repository

import (
	"encoding/json"
	"fmt"

	"github.com/voltshop/storefront/internal/cart/domain"
	"github.com/voltshop/storefront/pkg/logger"
)

// encodeItems serializes the cart's line items. The persisted value is
// the bare item array, which is what the storefront has always stored.
func encodeItems(cart domain.Cart) ([]byte, error) {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

// decodeItems parses a persisted cart payload. Malformed data degrades
// to an empty cart with a warning instead of failing the request: a
// poisoned key must not lock a customer out of the store.
func decodeItems(data []byte, sessionID string) domain.Cart {
	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("session_id", sessionID).
			Int("payload_bytes", len(data)).
			Msg("Discarding malformed persisted cart")
		return domain.Cart{}
	}
	return domain.Cart{Items: items}
}
