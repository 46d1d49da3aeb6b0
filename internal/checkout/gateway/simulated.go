// Package gateway holds payment gateway implementations. Only the
// simulated one exists today; a real processor client would slot in
// behind the same interface.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/pkg/logger"
)

// DefaultProcessingDelay mirrors the two-second spinner the storefront
// always showed.
const DefaultProcessingDelay = 2 * time.Second

// SimulatedGateway approves every charge after a fixed delay. Unlike the
// original fire-and-forget timer, authorization is tied to the request
// context: cancellation aborts the wait and no success is reported.
type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	if delay < 0 {
		delay = DefaultProcessingDelay
	}
	return &SimulatedGateway{delay: delay}
}

// Authorize waits out the processing delay and approves the charge.
func (g *SimulatedGateway) Authorize(ctx context.Context, req domain.PaymentRequest) (*domain.Receipt, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		logger.Warn(ctx).
			Str("order_id", req.OrderID).
			Int64("amount", req.Amount).
			Msg("Payment authorization cancelled")
		return nil, ctx.Err()
	case <-timer.C:
	}

	transactionID := fmt.Sprintf("TXN-%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:12])

	logger.Info(ctx).
		Str("order_id", req.OrderID).
		Str("transaction_id", transactionID).
		Int64("amount", req.Amount).
		Str("currency", req.Currency).
		Str("payment_method", req.PaymentMethod).
		Msg("Simulated payment authorized")

	return &domain.Receipt{
		TransactionID: transactionID,
		AuthorizedAt:  time.Now(),
	}, nil
}
