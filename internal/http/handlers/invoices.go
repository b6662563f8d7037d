package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"candora.shop/api/internal/http/middleware"
	"candora.shop/api/internal/http/validation"
	"candora.shop/api/internal/invoice"
	"candora.shop/api/internal/shared/apperr"
)

type InvoiceHandler struct {
	Logger   *slog.Logger
	Renderer *invoice.Renderer
}

func NewInvoiceHandler(logger *slog.Logger, r *invoice.Renderer) *InvoiceHandler {
	return &InvoiceHandler{Logger: logger, Renderer: r}
}

// POST /api/invoices/generate
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var order invoice.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid order data.", validation.FromBindError(err, &order)))
		return
	}

	pdf, err := h.Renderer.Render(order)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	orderNumber := order.OrderNumber
	if orderNumber == "" {
		orderNumber = "unknown"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", orderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
