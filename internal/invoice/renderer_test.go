package invoice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("full order", func(t *testing.T) {
		pdf, err := r.Render(Order{
			OrderNumber: "ORD-1001",
			CreatedAt:   "2025-03-14T10:30:00Z",
			Status:      "paid",
			Items: []Item{
				{ProductID: "a1b2c3d4e5f6", ProductName: "Widget", Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00},
				{ProductID: "f6e5d4c3b2a1", Quantity: 1, UnitPrice: 5.99, Subtotal: 5.99},
			},
			TotalAmount:  31.98,
			ShippingCost: 5.99,
		})
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
		require.Greater(t, len(pdf), 500)
	})

	t.Run("empty order still renders", func(t *testing.T) {
		pdf, err := r.Render(Order{})
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	})
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "March 14, 2025", formatDate("2025-03-14T10:30:00Z"))
	require.Equal(t, "March 14, 2025", formatDate("2025-03-14T10:30:00+00:00"))
	require.Equal(t, "yesterday", formatDate("yesterday"), "unparsable dates fall through verbatim")
	require.Equal(t, "", formatDate(""))
}
