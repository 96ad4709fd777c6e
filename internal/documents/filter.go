package documents

import (
	"strconv"
	"strings"

	"github.com/byildiz78/td-invoice/internal/models"
)

type TransferStatus string

const (
	TransferAll            TransferStatus = "all"
	TransferTransferred    TransferStatus = "transferred"
	TransferNotTransferred TransferStatus = "not-transferred"
)

// ParseTransferStatus: query parametresini çözümler; boş veya tanınmayan
// değer "all" kabul edilir.
func ParseTransferStatus(s string) TransferStatus {
	switch TransferStatus(s) {
	case TransferTransferred, TransferNotTransferred:
		return TransferStatus(s)
	default:
		return TransferAll
	}
}

// Filter: serbest metin araması ve aktarım durumu filtresini uygular.
// Arama; müşteri adı, belge no, şube adı ve belge türünde büyük/küçük harf
// duyarsız, vergi numarasında ise birebir alt dizi olarak eşleşir.
// OrderKey arama yüzeyine dahil değildir. Girdi dizisi değiştirilmez,
// hayatta kalan kayıtların sırası korunur.
func Filter(docs []models.InvoiceHeader, term string, status TransferStatus) []models.InvoiceHeader {
	term = strings.TrimSpace(term)
	lower := strings.ToLower(term)

	out := make([]models.InvoiceHeader, 0, len(docs))
	for _, doc := range docs {
		if term != "" && !matchesSearch(doc, term, lower) {
			continue
		}
		if !matchesTransfer(doc, status) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

func matchesSearch(doc models.InvoiceHeader, term, lower string) bool {
	if strings.Contains(strings.ToLower(doc.CustomerName), lower) {
		return true
	}
	if strings.Contains(strconv.Itoa(doc.OrderID), term) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.BranchName), lower) {
		return true
	}
	// Vergi numarası sayısaldır, birebir karşılaştırılır
	if strings.Contains(doc.CustomerTaxNo, term) {
		return true
	}
	return strings.Contains(strings.ToLower(string(doc.Type)), lower)
}

func matchesTransfer(doc models.InvoiceHeader, status TransferStatus) bool {
	switch status {
	case TransferTransferred:
		return doc.Transferred()
	case TransferNotTransferred:
		return !doc.Transferred()
	default:
		return true
	}
}
