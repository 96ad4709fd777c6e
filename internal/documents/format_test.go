package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyTurkishLocale(t *testing.T) {
	// Binlik ayracı nokta, ondalık ayracı virgül
	assert.Equal(t, "₺1.234,56", FormatCurrency(1234.56))
	assert.Equal(t, "₺0,00", FormatCurrency(0))
	assert.Equal(t, "₺1.234.567,89", FormatCurrency(1234567.89))
	assert.Equal(t, "₺50,00", FormatCurrency(50))
}

func TestFormatDates(t *testing.T) {
	ts := time.Date(2023, 7, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "15.07.2023 14:30", FormatDateTime(ts))
	assert.Equal(t, "15.07.2023", FormatDateOnly(ts))
	assert.Equal(t, "14:30", FormatTimeOnly(ts))
}

func TestFormatZeroTime(t *testing.T) {
	assert.Equal(t, "-", FormatDateTime(time.Time{}))
	assert.Equal(t, "-", FormatDateOnly(time.Time{}))
	assert.Equal(t, "-", FormatTimeOnly(time.Time{}))
}
