// Package invoice renders order snapshots into PDF invoices. The
// renderer is a pure function over its input, nothing is persisted.
package invoice

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is the caller-supplied snapshot; the service owns no order state.
type Order struct {
	OrderNumber  string  `json:"order_number"`
	CreatedAt    string  `json:"created_at"`
	Status       string  `json:"status"`
	Items        []Item  `json:"items"`
	TotalAmount  float64 `json:"total_amount"`
	ShippingCost float64 `json:"shipping_cost"`
}

type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// Render produces the invoice PDF: title, order info block, items table,
// totals (subtotal derived as total minus shipping).
func (r *Renderer) Render(o Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 14, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Order info
	pdf.SetTextColor(0, 0, 0)
	infoRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	infoRow("Order Number:", orDefault(o.OrderNumber, "N/A"))
	infoRow("Date:", formatDate(o.CreatedAt))
	infoRow("Status:", strings.ToUpper(orDefault(o.Status, "N/A")))
	pdf.Ln(8)

	// Items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(243, 244, 246)
	pdf.SetDrawColor(229, 231, 235)
	pdf.CellFormat(75, 8, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "Quantity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(38, 8, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(38, 8, "Subtotal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range o.Items {
		name := it.ProductName
		if name == "" {
			name = "Product #" + shortID(it.ProductID)
		}
		pdf.CellFormat(75, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(38, 8, money(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 8, money(it.Subtotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Totals
	subtotal := o.TotalAmount - o.ShippingCost
	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 12)
		pdf.CellFormat(138, 8, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(38, 8, value, "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal:", money(subtotal), false)
	totalRow("Shipping:", money(o.ShippingCost), false)
	totalRow("Total:", money(o.TotalAmount), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }

func formatDate(createdAt string) string {
	if createdAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("January 2, 2006")
}

func shortID(id string) string {
	if id == "" {
		return "N/A"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
