package documents

import (
	"sort"
	"strings"

	"github.com/byildiz78/td-invoice/internal/models"
)

type SortField string

const (
	SortByInvoiceDate   SortField = "InvoiceDate"
	SortByBranchName    SortField = "BranchName"
	SortByCustomerName  SortField = "CustomerName"
	SortByCustomerTaxNo SortField = "CustomerTaxNo"
	SortByInvoiceTotal  SortField = "InvoiceTotal"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortField: tanınmayan alan adı varsayılan sıralamaya (tarih) düşer.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByBranchName, SortByCustomerName, SortByCustomerTaxNo, SortByInvoiceTotal:
		return SortField(s)
	default:
		return SortByInvoiceDate
	}
}

func ParseSortDirection(s string) SortDirection {
	if SortDirection(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

type PageResult struct {
	PageItems  []models.InvoiceHeader `json:"page_items"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
	TotalCount int                    `json:"total_count"`
}

// SortAndPaginate: belgeleri seçilen alana göre sıralar ve sabit boyutlu
// sayfalara böler. Sıralama sort.SliceStable ile yapılır; eşit anahtarlı
// kayıtların girdi sırası korunur, böylece aynı girdiyle sayfalama tekrar
// üretilebilir. Tarihler zaman olarak, string alanlar büyük/küçük harf
// duyarsız, tutar sayısal karşılaştırılır. Çözümlenemeyen tarih en küçük
// değer (sıfır zaman) sayılır. Sayfa numarası 1 tabanlıdır ve
// [1, totalPages] aralığına kıstırılır.
func SortAndPaginate(docs []models.InvoiceHeader, field SortField, dir SortDirection, pageSize, page int) PageResult {
	sorted := make([]models.InvoiceHeader, len(docs))
	copy(sorted, docs)

	less := lessFunc(field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	if pageSize < 1 {
		pageSize = 10
	}

	totalPages := (len(sorted) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return PageResult{
		PageItems:  sorted[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalCount: len(sorted),
	}
}

func lessFunc(field SortField) func(a, b models.InvoiceHeader) bool {
	switch field {
	case SortByBranchName:
		return func(a, b models.InvoiceHeader) bool {
			return strings.ToLower(a.BranchName) < strings.ToLower(b.BranchName)
		}
	case SortByCustomerName:
		return func(a, b models.InvoiceHeader) bool {
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		}
	case SortByCustomerTaxNo:
		return func(a, b models.InvoiceHeader) bool {
			return strings.ToLower(a.CustomerTaxNo) < strings.ToLower(b.CustomerTaxNo)
		}
	case SortByInvoiceTotal:
		return func(a, b models.InvoiceHeader) bool {
			return a.InvoiceTotal < b.InvoiceTotal
		}
	default:
		return func(a, b models.InvoiceHeader) bool {
			return a.InvoiceDateTime().Before(b.InvoiceDateTime())
		}
	}
}
