package enums

// InvoiceStatus is derived from the paid amount against the invoice total.
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
)

var validInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusPending,
	InvoiceStatusPartiallyPaid,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
}

func (i InvoiceStatus) String() string { return string(i) }

func (i InvoiceStatus) IsValid() bool { return isOneOf(validInvoiceStatuses, i) }

func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	return parseOneOf("invoice status", validInvoiceStatuses, value)
}
