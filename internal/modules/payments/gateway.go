package payments

import "context"

// Status is the vendor-reported payment intent state, passed through
// exactly as the gateway returns it.
type Status string

const (
	StatusRequiresPaymentMethod Status = "requires_payment_method"
	StatusRequiresConfirmation  Status = "requires_confirmation"
	StatusRequiresAction        Status = "requires_action"
	StatusProcessing            Status = "processing"
	StatusSucceeded             Status = "succeeded"
	StatusCanceled              Status = "canceled"
	StatusRequiresCapture       Status = "requires_capture"
)

type CreateIntentInput struct {
	Amount   float64 // major units, > 0
	Currency string
	Metadata map[string]string // forwarded opaquely; vendor may cap key/value length
}

type Intent struct {
	ClientSecret    string  `json:"client_secret,omitempty"`
	PaymentIntentID string  `json:"payment_intent_id"`
	Status          Status  `json:"status"`
	Amount          float64 `json:"amount,omitempty"` // major units, set on retrieval
}

// WebhookEvent is only ever constructed from a verified payload.
// EventID is the vendor's unique event identifier; delivery is
// at-least-once, so callers that trigger side effects must de-duplicate
// on it themselves (the gateway keeps no state).
type WebhookEvent struct {
	EventID         string   `json:"event_id,omitempty"`
	Type            string   `json:"event_type"`
	PaymentIntentID string   `json:"payment_intent_id,omitempty"`
	Amount          *float64 `json:"amount,omitempty"` // major units, succeeded events only
}

// Recognized webhook event types. Anything else passes through with only
// the type set so new vendor events never break the integration.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// Gateway mediates all communication with the payment processor. One
// conforming implementation per vendor; all are stateless and safe for
// concurrent use. Callers own timeouts (via ctx) and retry policy.
// CreateIntent is not idempotent: two calls with identical arguments
// create two distinct intents.
type Gateway interface {
	Name() string
	CreateIntent(ctx context.Context, in CreateIntentInput) (Intent, error)
	GetIntent(ctx context.Context, paymentIntentID string) (Intent, error)
	VerifyAndParseWebhook(payload []byte, sigHeader string) (WebhookEvent, error)
}
