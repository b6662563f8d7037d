package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"candora.shop/api/internal/shared/apperr"
)

// SignatureHeader is the header Stripe signs webhook deliveries with:
// "t=<unix>,v1=<hex hmac-sha256 over 't.payload'>".
const SignatureHeader = "Stripe-Signature"

// DefaultTolerance bounds how old a webhook timestamp may be before the
// signature is rejected.
const DefaultTolerance = 5 * time.Minute

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Tolerance     time.Duration // 0 means DefaultTolerance
}

// Stripe is the vendor implementation of Gateway. It holds only
// immutable configuration, so a single instance serves concurrent
// requests without locking.
type Stripe struct {
	api           *client.API
	secretKey     string
	webhookSecret string
	tolerance     time.Duration
	now           func() time.Time
}

func NewStripe(cfg StripeConfig) *Stripe {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	tol := cfg.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	return &Stripe{
		api:           api,
		secretKey:     cfg.SecretKey,
		webhookSecret: cfg.WebhookSecret,
		tolerance:     tol,
		now:           time.Now,
	}
}

func (s *Stripe) Name() string { return "stripe" }

func (s *Stripe) CreateIntent(ctx context.Context, in CreateIntentInput) (Intent, error) {
	if s.secretKey == "" {
		return Intent{}, apperr.ConfigurationErr("Stripe secret key not configured")
	}
	if in.Amount <= 0 {
		return Intent{}, apperr.InvalidErr("amount must be greater than zero", nil)
	}
	if in.Currency == "" {
		return Intent{}, apperr.InvalidErr("currency is required", nil)
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(MinorUnits(in.Amount)),
		Currency: stripe.String(strings.ToLower(in.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, s.vendorErr(err)
	}

	return Intent{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		Status:          Status(pi.Status),
	}, nil
}

func (s *Stripe) GetIntent(ctx context.Context, paymentIntentID string) (Intent, error) {
	if s.secretKey == "" {
		return Intent{}, apperr.ConfigurationErr("Stripe secret key not configured")
	}
	if paymentIntentID == "" {
		return Intent{}, apperr.InvalidErr("payment_intent_id is required", nil)
	}

	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	pi, err := s.api.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return Intent{}, s.vendorErr(err)
	}

	return Intent{
		PaymentIntentID: pi.ID,
		Status:          Status(pi.Status),
		Amount:          MajorUnits(pi.Amount),
	}, nil
}

// VerifyAndParseWebhook recomputes the signature over the raw payload
// bytes (never re-serialized, a round trip through JSON could change the
// byte layout) and compares in constant time before any decoding.
func (s *Stripe) VerifyAndParseWebhook(payload []byte, sigHeader string) (WebhookEvent, error) {
	if s.webhookSecret == "" {
		return WebhookEvent{}, apperr.ConfigurationErr("Stripe webhook secret not configured")
	}
	if sigHeader == "" {
		return WebhookEvent{}, apperr.InvalidSignatureErr("missing signature header")
	}

	ts, sigs, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return WebhookEvent{}, apperr.InvalidSignatureErr(err.Error())
	}

	if s.tolerance > 0 && s.now().Sub(time.Unix(ts, 0)) > s.tolerance {
		return WebhookEvent{}, apperr.InvalidSignatureErr("timestamp outside tolerance")
	}

	expected := computeSignature(s.webhookSecret, ts, payload)
	matched := false
	for _, sig := range sigs {
		if hmac.Equal(sig, expected) {
			matched = true
		}
	}
	if !matched {
		return WebhookEvent{}, apperr.InvalidSignatureErr("no matching signature found")
	}

	var ev stripeEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return WebhookEvent{}, apperr.InvalidPayloadErr("invalid webhook payload", err)
	}

	out := WebhookEvent{EventID: ev.ID, Type: ev.Type}
	switch ev.Type {
	case EventPaymentSucceeded:
		out.PaymentIntentID = ev.Data.Object.ID
		amount := MajorUnits(ev.Data.Object.Amount)
		out.Amount = &amount
	case EventPaymentFailed:
		out.PaymentIntentID = ev.Data.Object.ID
	default:
		// Unrecognized types pass through with only the type set.
	}
	return out, nil
}

func (s *Stripe) vendorErr(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		if se.Code == stripe.ErrorCodeResourceMissing {
			return apperr.NotFoundErr("no such payment intent")
		}
		return apperr.GatewayErr(se.Msg, err)
	}
	return apperr.GatewayErr(err.Error(), err)
}

type stripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID     string `json:"id"`
			Amount int64  `json:"amount"`
		} `json:"object"`
	} `json:"data"`
}

// parseSignatureHeader extracts the timestamp and all v1 signatures from
// a "t=...,v1=...[,v1=...]" header.
func parseSignatureHeader(header string) (int64, [][]byte, error) {
	var ts int64 = -1
	var sigs [][]byte

	for _, item := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, nil, errors.New("invalid timestamp in signature header")
			}
			ts = n
		case "v1":
			sig, err := hex.DecodeString(v)
			if err != nil {
				continue // ignore malformed candidates, another may match
			}
			sigs = append(sigs, sig)
		}
	}

	if ts < 0 || len(sigs) == 0 {
		return 0, nil, errors.New("unable to extract timestamp and signatures from header")
	}
	return ts, sigs, nil
}

func computeSignature(secret string, ts int64, payload []byte) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	m.Write([]byte(strconv.FormatInt(ts, 10)))
	m.Write([]byte("."))
	m.Write(payload)
	return m.Sum(nil)
}
