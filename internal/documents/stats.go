package documents

import (
	"strings"

	"github.com/byildiz78/td-invoice/internal/models"
)

// ViewStats: dashboard'un üst kartlarındaki özet blok.
type ViewStats struct {
	DocumentCount    int     `json:"document_count"`
	TotalAmount      float64 `json:"total_amount"`
	EFaturaCount     int     `json:"e_fatura_count"`
	EArsivCount      int     `json:"e_arsiv_count"`
	TransferredCount int     `json:"transferred_count"`
}

func Stats(docs []models.InvoiceHeader) ViewStats {
	var s ViewStats
	s.DocumentCount = len(docs)
	for _, doc := range docs {
		s.TotalAmount += doc.InvoiceTotal

		t := string(doc.Type)
		if strings.Contains(t, "FATURA") {
			s.EFaturaCount++
		} else if strings.Contains(t, "ARSIV") || strings.Contains(t, "ARŞİV") {
			s.EArsivCount++
		}

		if doc.Transferred() {
			s.TransferredCount++
		}
	}
	return s
}
