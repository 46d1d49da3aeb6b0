package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/voltshop/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// CartRepositoryWithTracing wraps a CartRepository with OpenTelemetry
// spans around every persistence call.
type CartRepositoryWithTracing struct {
	inner domain.CartRepository
}

// NewCartRepositoryWithTracing creates a tracing decorator around repo.
func NewCartRepositoryWithTracing(repo domain.CartRepository) *CartRepositoryWithTracing {
	return &CartRepositoryWithTracing{inner: repo}
}

func (r *CartRepositoryWithTracing) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	ctx, span := tracer.Start(ctx, "repository.LoadCart",
		trace.WithAttributes(attribute.String("cart.session_id", sessionID)),
	)
	defer span.End()

	cart, err := r.inner.Load(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Cart{}, err
	}

	span.SetAttributes(
		attribute.Int("cart.lines", len(cart.Items)),
		attribute.Int("cart.count", cart.Count()),
	)
	return cart, nil
}

func (r *CartRepositoryWithTracing) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	ctx, span := tracer.Start(ctx, "repository.SaveCart",
		trace.WithAttributes(
			attribute.String("cart.session_id", sessionID),
			attribute.Int("cart.lines", len(cart.Items)),
		),
	)
	defer span.End()

	if err := r.inner.Save(ctx, sessionID, cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *CartRepositoryWithTracing) Clear(ctx context.Context, sessionID string) error {
	ctx, span := tracer.Start(ctx, "repository.ClearCart",
		trace.WithAttributes(attribute.String("cart.session_id", sessionID)),
	)
	defer span.End()

	if err := r.inner.Clear(ctx, sessionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
