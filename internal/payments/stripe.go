// Package payments provides the Stripe-backed implementation of the
// portal's payment processor boundary.
package payments

import (
	"context"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"reseller-portal-go/internal/core"
)

// StripeProcessor implements core.PaymentProcessor against the Stripe API.
type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor creates a StripeProcessor with the given secret key.
func NewStripeProcessor(secretKey string) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProcessor{api: api}
}

// CreateIntent creates a payment intent for the given amount and currency.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (*core.ProcessorIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}
	return toProcessorIntent(pi), nil
}

// RetrieveIntent re-fetches a payment intent by id. The returned status
// and amount are the source of truth for verification; client-supplied
// values are never trusted.
func (p *StripeProcessor) RetrieveIntent(ctx context.Context, intentID string) (*core.ProcessorIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent retrieval failed for '%s': %w", intentID, err)
	}
	return toProcessorIntent(pi), nil
}

func toProcessorIntent(pi *stripe.PaymentIntent) *core.ProcessorIntent {
	return &core.ProcessorIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Created:      time.Unix(pi.Created, 0).UTC(),
	}
}
