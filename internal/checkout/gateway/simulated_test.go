package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/pkg/logger"
)

func init() {
	logger.Init("gateway-test", false)
}

func TestAuthorizeApprovesAfterDelay(t *testing.T) {
	gw := NewSimulatedGateway(10 * time.Millisecond)

	receipt, err := gw.Authorize(context.Background(), domain.PaymentRequest{
		OrderID:       "ORD-test",
		Amount:        3_613_000,
		Currency:      "NGN",
		PaymentMethod: domain.MethodCreditCard,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^TXN-[0-9a-f]{12}$`, receipt.TransactionID)
	assert.WithinDuration(t, time.Now(), receipt.AuthorizedAt, time.Second)
}

func TestAuthorizeRejectsNonPositiveAmount(t *testing.T) {
	gw := NewSimulatedGateway(0)

	_, err := gw.Authorize(context.Background(), domain.PaymentRequest{Amount: 0})
	assert.Error(t, err)
}

func TestAuthorizeHonorsCancellation(t *testing.T) {
	gw := NewSimulatedGateway(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := gw.Authorize(ctx, domain.PaymentRequest{Amount: 100})
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("authorization did not return after cancellation")
	}
}
