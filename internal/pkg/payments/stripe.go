package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

// IntentCreator creates a payment intent with the external processor and
// returns the client secret the frontend completes the payment with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// StripeGateway implements IntentCreator against the Stripe API.
type StripeGateway struct {
	client   *client.API
	currency string
}

// NewStripeGateway creates a new StripeGateway with the provided secret key
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripeGateway{
		client:   sc,
		currency: currency,
	}
}

// CreateIntent creates a card payment intent for the given amount in the
// smallest currency unit. The call is not retried; a provider failure is
// surfaced as ErrPaymentProvider.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", apperrors.ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrPaymentProvider, err)
	}

	return pi.ClientSecret, nil
}
