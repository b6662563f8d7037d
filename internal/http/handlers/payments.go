package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"candora.shop/api/internal/http/middleware"
	"candora.shop/api/internal/http/validation"
	"candora.shop/api/internal/modules/payments"
	"candora.shop/api/internal/shared/apperr"
)

// Webhook payloads are small event envelopes; cap the body so a rogue
// sender cannot buffer arbitrary bytes before verification.
const maxWebhookBody = 64 * 1024

type PaymentHandler struct {
	Logger  *slog.Logger
	Gateway payments.Gateway
}

func NewPaymentHandler(logger *slog.Logger, gw payments.Gateway) *PaymentHandler {
	return &PaymentHandler{Logger: logger, Gateway: gw}
}

type createIntentInput struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Currency   string  `json:"currency" binding:"omitempty,len=3"`
	OrderID    string  `json:"order_id" binding:"required"`
	CustomerID string  `json:"customer_id"`
}

// POST /api/payments/create-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var in createIntentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request body.", validation.FromBindError(err, &in)))
		return
	}

	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}

	res, err := h.Gateway.CreateIntent(c.Request.Context(), payments.CreateIntentInput{
		Amount:   in.Amount,
		Currency: currency,
		Metadata: map[string]string{
			"order_id":    in.OrderID,
			"customer_id": in.CustomerID,
		},
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

type confirmInput struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
	OrderID         string `json:"order_id" binding:"required"`
}

// POST /api/payments/confirm
//
// Returns the gateway's current view of the intent. Updating order state
// from it is the caller's job (here or via webhook).
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var in confirmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request body.", validation.FromBindError(err, &in)))
		return
	}

	res, err := h.Gateway.GetIntent(c.Request.Context(), in.PaymentIntentID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// POST /api/payments/webhook
//
// Body must stay raw: the signature covers the exact bytes the vendor
// sent. Deliveries are at-least-once; consumers acting on the returned
// event de-duplicate on event_id.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	sig := c.GetHeader(payments.SignatureHeader)
	if sig == "" {
		middleware.Fail(c, apperr.InvalidSignatureErr("Missing stripe-signature header"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		middleware.Fail(c, apperr.InvalidPayloadErr("unable to read request body", err))
		return
	}

	ev, err := h.Gateway.VerifyAndParseWebhook(body, sig)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	h.Logger.InfoContext(c.Request.Context(), "webhook event verified",
		"provider", h.Gateway.Name(), "event_id", ev.EventID, "type", ev.Type)

	c.JSON(http.StatusOK, gin.H{"status": "success", "event": ev})
}
