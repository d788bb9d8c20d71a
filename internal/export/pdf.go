// Package export renders ledger data into downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// Row is one transaction line of an export.
type Row struct {
	Date           time.Time
	BudgetCategory string
	Category       string
	Comment        string
	Amount         decimal.Decimal
}

// Statement is the content of a transaction export.
type Statement struct {
	Owner    string
	Currency string
	From     time.Time
	To       time.Time
	Rows     []Row
}

// Total sums the amounts of all rows.
func (s *Statement) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Rows {
		total = total.Add(r.Amount)
	}
	return total
}

// BuildTransactionsPDF renders the statement as an A4 PDF.
func BuildTransactionsPDF(s *Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transactions export", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Transactions export", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("User: %s", s.Owner)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s - %s", s.From.Format("2006-01-02"), s.To.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(28, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Budget", "B", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Category", "B", 0, "L", false, 0, "")
	pdf.CellFormat(42, 7, "Comment", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if len(s.Rows) == 0 {
		pdf.CellFormat(0, 7, "No transactions in this period.", "", 1, "L", false, 0, "")
	}
	for _, r := range s.Rows {
		pdf.CellFormat(28, 6, r.Date.Format("2006-01-02"), "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, tr(truncate(r.BudgetCategory, 24)), "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, tr(truncate(r.Category, 24)), "", 0, "L", false, 0, "")
		pdf.CellFormat(42, 6, tr(truncate(r.Comment, 22)), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, formatAmount(r.Amount, s.Currency), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(160, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, formatAmount(s.Total(), s.Currency), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatAmount(d decimal.Decimal, currency string) string {
	if currency == "" {
		return d.StringFixed(2)
	}
	return d.StringFixed(2) + " " + currency
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
