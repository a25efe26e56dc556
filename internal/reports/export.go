package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteCSV renders the sales report rows as CSV. Money columns are formatted
// with grouped thousands for spreadsheet consumers.
func WriteCSV(w io.Writer, rows []DailySales) error {
	printer := message.NewPrinter(language.English)
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "invoice_count", "total_sales", "total_vat"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", row.InvoiceCount),
			printer.Sprintf("%.2f", row.TotalSales),
			printer.Sprintf("%.2f", row.TotalVAT),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
