package report

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money "$1,234.50".
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}

// Number entero con separador de miles.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Timestamp fecha legible; "N/A" si falta.
func Timestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04")
}
