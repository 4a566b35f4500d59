package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

const (
	// ContentType is the MIME type of every workbook produced here.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	PayrollSheet  = "Payroll"
	InvoicesSheet = "Invoices"
)

// NameLookup resolves a display name for an id; unknown ids map to "".
type NameLookup func(id string) string

var payrollHeaders = []string{"Estimate ID", "User ID", "User", "Warehouse ID", "Start Date", "End Date", "Hours Worked", "Hourly Rate", "Gross Pay", "Generated At", "Generated By"}

var invoiceHeaders = []string{"Invoice ID", "Order ID", "Customer ID", "Customer", "Total Amount", "Paid Amount", "Balance", "Status", "Due Date", "Created At"}

// WritePayroll streams an XLSX workbook of the given estimates to w.
func WritePayroll(w io.Writer, rows []models.PayrollEstimate, userName NameLookup) error {
	values := make([][]any, 0, len(rows))
	for _, est := range rows {
		values = append(values, []any{
			est.ID,
			est.UserID,
			lookup(userName, est.UserID),
			est.WarehouseID,
			est.StartDate.String(),
			est.EndDate.String(),
			est.HoursWorked.InexactFloat64(),
			est.HourlyRate.InexactFloat64(),
			est.GrossPay.InexactFloat64(),
			est.GeneratedAt.Format("2006-01-02 15:04:05"),
			est.GeneratedBy,
		})
	}
	return writeSheet(w, PayrollSheet, payrollHeaders, values)
}

// WriteInvoices streams an XLSX workbook of the given invoices to w.
func WriteInvoices(w io.Writer, rows []models.Invoice, customerName NameLookup) error {
	values := make([][]any, 0, len(rows))
	for _, inv := range rows {
		values = append(values, []any{
			inv.ID,
			inv.OrderID,
			inv.CustomerID,
			lookup(customerName, inv.CustomerID),
			inv.TotalAmount.InexactFloat64(),
			inv.PaidAmount.InexactFloat64(),
			inv.Balance().InexactFloat64(),
			inv.Status.String(),
			inv.DueDate.String(),
			inv.CreatedAt.String(),
		})
	}
	return writeSheet(w, InvoicesSheet, invoiceHeaders, values)
}

func writeSheet(w io.Writer, sheet string, headers []string, rows [][]any) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, sheet, 1, toAny(headers)); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNo, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func lookup(fn NameLookup, id string) string {
	if fn == nil {
		return ""
	}
	return fn(id)
}
