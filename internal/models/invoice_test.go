package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInvoiceDateFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"RFC3339", "2023-07-15T14:30:00Z", time.Date(2023, 7, 15, 14, 30, 0, 0, time.UTC)},
		{"T ayraçlı, saat dilimsiz", "2023-07-15T14:30:00", time.Date(2023, 7, 15, 14, 30, 0, 0, time.UTC)},
		{"milisaniyeli", "2023-07-15T14:30:00.123", time.Date(2023, 7, 15, 14, 30, 0, 123000000, time.UTC)},
		{"boşluk ayraçlı", "2023-07-15 14:30:00", time.Date(2023, 7, 15, 14, 30, 0, 0, time.UTC)},
		{"sadece tarih", "2023-07-15", time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseInvoiceDate(tt.in)))
		})
	}
}

func TestParseInvoiceDateUnparseableIsZero(t *testing.T) {
	assert.True(t, ParseInvoiceDate("tarih değil").IsZero())
	assert.True(t, ParseInvoiceDate("").IsZero())
}

func TestInvoiceHeaderTransferred(t *testing.T) {
	assert.True(t, InvoiceHeader{IsTransferred: 1}.Transferred())
	assert.False(t, InvoiceHeader{IsTransferred: 0}.Transferred())
}
