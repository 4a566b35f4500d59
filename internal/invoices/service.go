package invoices

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// DefaultDueDays is the calendar-day offset between creation and due date.
const DefaultDueDays = 30

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrDuplicateInvoice = errors.New("invoice already exists for order")
	ErrInvoiceNotFound  = errors.New("invoice not found")
)

// Service generates invoices from orders and applies payments to them.
type Service interface {
	Generate(tx *state.State, orderID string) (models.Invoice, error)
	RecordPayment(tx *state.State, input PaymentInput) (models.Invoice, error)
}

// PaymentInput is the payload for recording a payment. Amount positivity is the
// caller's responsibility; the engine adds whatever it is given.
type PaymentInput struct {
	InvoiceID string              `json:"invoice_id"`
	Amount    decimal.Decimal     `json:"amount"`
	Method    enums.PaymentMethod `json:"method"`
}

type service struct {
	notes   notifications.Service
	clock   state.Clock
	ids     state.IDGenerator
	dueDays int
}

// NewService wires the invoicing engine. A non-positive dueDays falls back to DefaultDueDays.
func NewService(notes notifications.Service, clock state.Clock, ids state.IDGenerator, dueDays int) (Service, error) {
	if notes == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator required")
	}
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}
	return &service{notes: notes, clock: clock, ids: ids, dueDays: dueDays}, nil
}

func (s *service) Generate(tx *state.State, orderID string) (models.Invoice, error) {
	orderID = strings.TrimSpace(orderID)
	order, ok := tx.Order(orderID)
	if !ok {
		return models.Invoice{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrOrderNotFound, fmt.Sprintf("Order #%s not found", orderID))
	}
	if existing, dup := tx.InvoiceForOrder(order.ID); dup {
		return models.Invoice{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrDuplicateInvoice, "Invoice already exists for this order").
			WithDetails(map[string]any{"invoice_id": existing.ID})
	}

	created := types.NewDate(s.clock())
	invoice := models.Invoice{
		ID:          s.ids("inv"),
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: order.TotalAmount,
		PaidAmount:  decimal.Zero,
		Status:      enums.InvoiceStatusPending,
		CreatedAt:   created,
		DueDate:     created.AddDays(s.dueDays),
	}
	tx.Invoices = append(tx.Invoices, invoice)
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Invoice generated for Order #%s", order.ID))
	return invoice, nil
}

func (s *service) RecordPayment(tx *state.State, input PaymentInput) (models.Invoice, error) {
	if !input.Method.IsValid() {
		return models.Invoice{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payment method %q", input.Method)).
			WithDetails(map[string]string{"method": "must be one of [cash bank_transfer check]"})
	}
	idx := tx.InvoiceIndex(strings.TrimSpace(input.InvoiceID))
	if idx < 0 {
		return models.Invoice{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrInvoiceNotFound, fmt.Sprintf("Invoice %s not found", input.InvoiceID))
	}

	invoice := tx.Invoices[idx]
	invoice.PaidAmount = invoice.PaidAmount.Add(input.Amount)
	invoice.Status = DeriveStatus(invoice.Status, invoice.PaidAmount, invoice.TotalAmount)
	tx.Invoices[idx] = invoice

	tx.Payments = append(tx.Payments, models.Payment{
		ID:        s.ids("pay"),
		InvoiceID: invoice.ID,
		Amount:    input.Amount,
		Method:    input.Method,
		Date:      types.NewDate(s.clock()),
	})
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Payment of %s ETB recorded via %s", input.Amount.StringFixed(2), methodLabel(input.Method)))
	return invoice, nil
}

// DeriveStatus maps the paid amount onto an invoice status. Nothing paid keeps the
// current status; overdue is never derived here.
func DeriveStatus(current enums.InvoiceStatus, paid, total decimal.Decimal) enums.InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return enums.InvoiceStatusPaid
	case paid.IsPositive():
		return enums.InvoiceStatusPartiallyPaid
	default:
		return current
	}
}

func methodLabel(m enums.PaymentMethod) string {
	switch m {
	case enums.PaymentMethodCash:
		return "Cash"
	case enums.PaymentMethodBankTransfer:
		return "Bank Transfer"
	case enums.PaymentMethodCheck:
		return "Check"
	}
	return string(m)
}
