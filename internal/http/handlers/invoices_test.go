package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"candora.shop/api/internal/invoice"
)

func invoiceRouter() *gin.Engine {
	return newTestRouter(func(r *gin.Engine) {
		h := NewInvoiceHandler(testLogger(), invoice.NewRenderer())
		r.POST("/api/invoices/generate", h.Generate)
	})
}

func TestInvoiceHandler_Generate(t *testing.T) {
	t.Run("returns a pdf attachment", func(t *testing.T) {
		rr := postJSON(t, invoiceRouter(), "/api/invoices/generate", invoice.Order{
			OrderNumber: "ORD-1001",
			CreatedAt:   "2025-03-14T10:30:00Z",
			Status:      "paid",
			Items: []invoice.Item{
				{ProductName: "Widget", Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00},
			},
			TotalAmount:  25.99,
			ShippingCost: 5.99,
		})

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		require.Equal(t, "attachment; filename=invoice_ORD-1001.pdf", rr.Header().Get("Content-Disposition"))
		require.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("missing order number falls back to unknown", func(t *testing.T) {
		rr := postJSON(t, invoiceRouter(), "/api/invoices/generate", invoice.Order{TotalAmount: 10})

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "attachment; filename=invoice_unknown.pdf", rr.Header().Get("Content-Disposition"))
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/invoices/generate", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		invoiceRouter().ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
