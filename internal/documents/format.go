package documents

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// tr-TR sayı formatı: binlik ayracı nokta, ondalık ayracı virgül
var trPrinter = message.NewPrinter(language.Turkish)

// FormatCurrency: tutarı TL olarak biçimler, örn. ₺1.234,56
func FormatCurrency(amount float64) string {
	return trPrinter.Sprintf("₺%.2f", amount)
}

// FormatDateTime: 02.01.2006 15:04; sıfır zaman "-" olarak döner
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006 15:04")
}

func FormatDateOnly(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}

func FormatTimeOnly(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("15:04")
}
