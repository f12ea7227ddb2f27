package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateTimeLayout fecha/hora local de las hojas de detalle (ej. "10/17/2026, 9:15:00 AM").
const DateTimeLayout = "1/2/2006, 3:04:05 PM"

// DefaultCurrencySymbol peso filipino, moneda del POS.
const DefaultCurrencySymbol = "₱"

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber número con separador de miles y hasta 3 decimales sin ceros a la derecha
// (1234.5 -> "1,234.5", 200 -> "200").
func FormatNumber(v decimal.Decimal) string {
	v = v.Round(3)
	neg := v.IsNegative()
	v = v.Abs()

	whole := v.Truncate(0)
	s := numberPrinter.Sprintf("%d", whole.IntPart())
	if frac := v.Sub(whole); !frac.IsZero() {
		s += strings.TrimPrefix(frac.String(), "0")
	}
	if neg {
		s = "-" + s
	}
	return s
}

// FormatCurrency símbolo + FormatNumber.
func FormatCurrency(symbol string, v decimal.Decimal) string {
	return symbol + FormatNumber(v)
}

// FormatDateTime fecha/hora en la zona de loc.
func FormatDateTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(loc).Format(DateTimeLayout)
}

// FileName nombre base del reporte, sin extensión: sales_report_YYYYMMDDHHMMSS.
func FileName(generatedAt time.Time) string {
	return "sales_report_" + generatedAt.Format("20060102150405")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
