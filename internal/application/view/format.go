package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dateTimeLayout = "2006-01-02 15:04"
	emptyCell      = "—"
)

// FormatAmount cantidad con separador de miles y hasta 2 decimales (ej. 1,250.5).
func FormatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// FormatMoney monto con exactamente 2 decimales (ej. 45.50).
func FormatMoney(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatOptionalAmount como FormatAmount; nil → guion.
func FormatOptionalAmount(d *decimal.Decimal) string {
	if d == nil {
		return emptyCell
	}
	return FormatAmount(*d)
}

// FormatTime fecha y hora en la zona con que llegó de la API (UTC si no traía zona); cero → guion.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return emptyCell
	}
	return t.Format(dateTimeLayout)
}

// ItemTypeLabel "finished_product" → "Finished Product".
func ItemTypeLabel(itemType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(itemType, "_", " "))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyCell
	}
	return s
}
