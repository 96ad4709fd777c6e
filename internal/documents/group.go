package documents

import (
	"sort"
	"strings"

	"github.com/byildiz78/td-invoice/internal/models"
)

// UnknownBranchName: şube adı boş gelen belgeler bu başlık altında toplanır.
const UnknownBranchName = "Bilinmeyen Şube"

type BranchGroup struct {
	BranchName       string                 `json:"branch_name"`
	Documents        []models.InvoiceHeader `json:"documents"`
	TotalAmount      float64                `json:"total_amount"`
	DocumentCount    int                    `json:"document_count"`
	EFaturaCount     int                    `json:"e_fatura_count"`
	EArsivCount      int                    `json:"e_arsiv_count"`
	LastDocumentDate string                 `json:"last_document_date"`
	TransferredCount int                    `json:"transferred_count"`
}

// GroupByBranch: belgeleri şube adına göre gruplar. Gruplar toplam tutara
// göre azalan sırada döner; eşit tutarlar girdi içinde ilk görülme sırasını
// korur. Son belge tarihi zaman karşılaştırmasıyla bulunur, tarih string'i
// karşılaştırması ISO olmayan formatlarda yanlış sonuç verir.
func GroupByBranch(docs []models.InvoiceHeader) []BranchGroup {
	groups := make([]BranchGroup, 0)
	index := make(map[string]int)

	for _, doc := range docs {
		name := doc.BranchName
		if name == "" {
			name = UnknownBranchName
		}

		gi, ok := index[name]
		if !ok {
			gi = len(groups)
			index[name] = gi
			groups = append(groups, BranchGroup{
				BranchName:       name,
				LastDocumentDate: doc.InvoiceDate,
			})
		}

		g := &groups[gi]
		g.Documents = append(g.Documents, doc)
		g.TotalAmount += doc.InvoiceTotal
		g.DocumentCount++

		if doc.InvoiceDateTime().After(models.ParseInvoiceDate(g.LastDocumentDate)) {
			g.LastDocumentDate = doc.InvoiceDate
		}

		t := string(doc.Type)
		if strings.Contains(t, "FATURA") {
			g.EFaturaCount++
		} else if strings.Contains(t, "ARSIV") || strings.Contains(t, "ARŞİV") {
			g.EArsivCount++
		}

		if doc.Transferred() {
			g.TransferredCount++
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalAmount > groups[j].TotalAmount
	})

	return groups
}

// SortDocumentsByDateDesc: grup üyelerini en yeni belge başta olacak şekilde
// sıralanmış YENİ bir dizi olarak döner; görüntüleme anı sıralamasıdır,
// gruplama sözleşmesinin parçası değildir.
func SortDocumentsByDateDesc(docs []models.InvoiceHeader) []models.InvoiceHeader {
	out := make([]models.InvoiceHeader, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].InvoiceDateTime().After(out[j].InvoiceDateTime())
	})
	return out
}
