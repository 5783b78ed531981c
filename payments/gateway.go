package payments

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentCreator requests a client-usable payment handle from the gateway.
// Every call creates a new, independent intent; there is no idempotency key.
type IntentCreator interface {
	CreateIntent(amountMinorUnits int64) (clientSecret string, err error)
}

// StripeGateway implements IntentCreator against the Stripe API.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client with the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateIntent creates a card payment intent for the given amount in USD
// minor units and returns its client secret verbatim.
func (g *StripeGateway) CreateIntent(amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
