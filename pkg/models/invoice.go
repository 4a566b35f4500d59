package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// Invoice bills exactly one order.
type Invoice struct {
	ID          string              `json:"id"`
	OrderID     string              `json:"order_id"`
	CustomerID  string              `json:"customer_id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	PaidAmount  decimal.Decimal     `json:"paid_amount"`
	Status      enums.InvoiceStatus `json:"status"`
	DueDate     types.Date          `json:"due_date"`
	CreatedAt   types.Date          `json:"created_at"`
}

// Balance is total minus paid. It goes negative on overpayment.
func (i Invoice) Balance() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// Overpaid reports whether more than the total has been paid.
func (i Invoice) Overpaid() bool {
	return i.PaidAmount.GreaterThan(i.TotalAmount)
}

// Payment is an append-only receipt against an invoice.
type Payment struct {
	ID        string              `json:"id"`
	InvoiceID string              `json:"invoice_id"`
	Amount    decimal.Decimal     `json:"amount"`
	Method    enums.PaymentMethod `json:"method"`
	Date      types.Date          `json:"date"`
}
