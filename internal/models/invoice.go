package models

import "time"

type InvoiceType string

const (
	InvoiceTypeEFatura InvoiceType = "E-FATURA"
	InvoiceTypeEArsiv  InvoiceType = "E-ARŞİV"
)

// RobotPos tarih formatları; upstream bazen milisaniyeli, bazen saniyesiz döner
var invoiceDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInvoiceDate: belge tarihini çözümler. Çözümlenemeyen tarih sıfır
// zaman olarak döner; tek bir bozuk kayıt görünümün tamamını düşürmemeli.
func ParseInvoiceDate(s string) time.Time {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// InvoiceHeader: tek bir düzenlenen belgenin özet satırı.
// Alan adları ve JSON tag'leri RobotPos sorgu çıktısıyla birebir aynıdır,
// upstream cevabı değiştirilmeden istemciye taşınır.
type InvoiceHeader struct {
	OrderKey          string      `json:"OrderKey"`
	OrderID           int         `json:"OrderID"`
	BranchName        string      `json:"BranchName"`
	ExternalCode      string      `json:"ExternalCode"`
	Type              InvoiceType `json:"Type"`
	InvoiceTotal      float64     `json:"InvoiceTotal"`
	OrderDiscount     float64     `json:"OrderDiscount"`
	InvoiceDate       string      `json:"InvoiceDate"`
	CustomerName      string      `json:"CustomerName"`
	CustomerTaxNo     string      `json:"CustomerTaxNo"`
	CustomerTaxOffice string      `json:"CustomerTaxOffice"`
	CustomerEMail     string      `json:"CustomerEMail"`
	CustomerAddress   string      `json:"CustomerAddress"`
	RefNo             string      `json:"RefNo"`
	UserCode          string      `json:"UserCode"`
	UserType          string      `json:"UserType"`
	ItemCount         int         `json:"ItemCount"`
	PaymentCount      int         `json:"PaymentCount"`
	IsTransferred     int         `json:"IsTransferred"` // 1 = aktarıldı, 0 = aktarılmadı
}

func (h InvoiceHeader) InvoiceDateTime() time.Time {
	return ParseInvoiceDate(h.InvoiceDate)
}

func (h InvoiceHeader) Transferred() bool {
	return h.IsTransferred == 1
}

type InvoiceItem struct {
	TransactionKey  string  `json:"TransactionKey"`
	ItemCode        string  `json:"ItemCode"`
	ItemsDefinition string  `json:"ItemsDefinition"`
	TaxPercent      int     `json:"TaxPercent"`
	Quantity        float64 `json:"Quantity"`
	UnitPrice       float64 `json:"UnitPrice"`
	Amount          float64 `json:"Amount"`
	DiscountTotal   float64 `json:"DiscountTotal"`
	ItemNote        string  `json:"ItemNote,omitempty"`
	IsMainCombo     bool    `json:"IsMainCombo"`

	// Doluysa bu kalem, TransactionKey'i bu değere eşit olan combo
	// kaleminin altında faturalanan bir alt üründür.
	MainTransactionKey string `json:"MainTransactionKey,omitempty"`
}

type InvoicePayment struct {
	PaymentKey     string  `json:"PaymentKey"`
	PaymentName    string  `json:"PaymentName"`
	SubPaymentName string  `json:"SubPaymentName"`
	Amount         float64 `json:"Amount"`
}

type InvoiceDetail struct {
	InvoiceHeader
	Items    []InvoiceItem    `json:"Items"`
	Payments []InvoicePayment `json:"Payments"`
}
