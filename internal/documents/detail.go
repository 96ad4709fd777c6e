package documents

import (
	"github.com/shopspring/decimal"

	"github.com/byildiz78/td-invoice/internal/models"
)

type RenderedLine struct {
	Item models.InvoiceItem `json:"item"`

	// Combo menü içeriği; combo olmayan satırlarda boş
	SubItems []models.InvoiceItem `json:"sub_items,omitempty"`
}

type RenderedDetail struct {
	Subtotal   float64 `json:"subtotal"`
	TotalTax   float64 `json:"total_tax"`
	GrandTotal float64 `json:"grand_total"`

	SubtotalFormatted   string `json:"subtotal_formatted"`
	TotalTaxFormatted   string `json:"total_tax_formatted"`
	GrandTotalFormatted string `json:"grand_total_formatted"`

	// Önce combo ana kalemleri (alt ürünleriyle), sonra bağımsız kalemler
	Lines []RenderedLine `json:"lines"`

	Payments []models.InvoicePayment `json:"payments"`
}

// RenderDetail: belge detayından yazdırılabilir görünümün türetilmiş
// toplamlarını ve kalem ağacını üretir. Genel toplam yalnızca görüntüleme
// amaçlıdır; upstream'in InvoiceTotal değeriyle mutabakatı yapılmaz ve
// uyuşmazlık sessizce "düzeltilmez".
//
// Ana combo olmayan ve MainTransactionKey'i dolu olup hiçbir ana kaleme
// bağlanamayan satırlar tabloya alınmaz; kaynak sistemin davranışı budur.
func RenderDetail(d models.InvoiceDetail) RenderedDetail {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for _, it := range d.Items {
		amount := decimal.NewFromFloat(it.Amount)
		subtotal = subtotal.Add(amount)
		totalTax = totalTax.Add(amount.Mul(decimal.NewFromInt(int64(it.TaxPercent))).Div(hundred))
	}
	grandTotal := subtotal.Add(totalTax)

	// Alt ürünleri ana kaleme tek geçişte bağla
	subIndex := make(map[string][]models.InvoiceItem)
	for _, it := range d.Items {
		if it.MainTransactionKey != "" {
			subIndex[it.MainTransactionKey] = append(subIndex[it.MainTransactionKey], it)
		}
	}

	lines := make([]RenderedLine, 0, len(d.Items))
	for _, it := range d.Items {
		if it.IsMainCombo {
			lines = append(lines, RenderedLine{Item: it, SubItems: subIndex[it.TransactionKey]})
		}
	}
	for _, it := range d.Items {
		if !it.IsMainCombo && it.MainTransactionKey == "" {
			lines = append(lines, RenderedLine{Item: it})
		}
	}

	sub := subtotal.InexactFloat64()
	tax := totalTax.InexactFloat64()
	grand := grandTotal.InexactFloat64()

	return RenderedDetail{
		Subtotal:            sub,
		TotalTax:            tax,
		GrandTotal:          grand,
		SubtotalFormatted:   FormatCurrency(sub),
		TotalTaxFormatted:   FormatCurrency(tax),
		GrandTotalFormatted: FormatCurrency(grand),
		Lines:               lines,
		Payments:            d.Payments,
	}
}
