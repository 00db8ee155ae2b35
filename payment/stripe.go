package payment

import (
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Intent is the opaque handle returned by the payment processor.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Client abstracts payment-intent creation for dependency injection and testing.
type Client interface {
	CreateIntent(amount int64, currency string) (*Intent, error)
}

// GatewayError wraps a failure from the payment processor.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s", e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// StripeClient creates payment intents against the Stripe API.
type StripeClient struct{}

func NewStripeClient() Client {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeClient{}
}

// CreateIntent creates a payment intent for the given amount (in the smallest
// currency unit) and currency. No retries and no idempotency key are applied.
func (c *StripeClient) CreateIntent(amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, &GatewayError{Message: err.Error(), Err: err}
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
