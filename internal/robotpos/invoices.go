package robotpos

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/byildiz78/td-invoice/internal/models"
)

// FetchHeaders: verilen tarih aralığındaki belge başlıklarını çeker.
// OrderKey'i boş gelen satırlar karantinaya alınır (düşürülür ve sayılır);
// eksik zorunlu alan biçimleme katmanına taşınmaz.
func (c *Client) FetchHeaders(ctx context.Context, startDate, endDate string) ([]models.InvoiceHeader, error) {
	sql, err := c.queries.HeadersQuery(startDate, endDate)
	if err != nil {
		return nil, err
	}

	result, err := c.execute(ctx, sql)
	if err != nil {
		return nil, err
	}
	if result == "" {
		return []models.InvoiceHeader{}, nil
	}

	var headers []models.InvoiceHeader
	if err := json.Unmarshal([]byte(result), &headers); err != nil {
		return nil, fmt.Errorf("başlık listesi çözümlenemedi: %w", err)
	}

	valid := headers[:0]
	dropped := 0
	for _, h := range headers {
		if h.OrderKey == "" {
			dropped++
			continue
		}
		valid = append(valid, h)
	}
	if dropped > 0 {
		log.Printf("FetchHeaders: OrderKey'i eksik %d kayıt atlandı", dropped)
	}

	return valid, nil
}

// Detay satırında Items ve Payments, Result JSON'unun içinde ikinci kez
// string olarak kodlanmış gelebilir
type detailRow struct {
	models.InvoiceHeader
	Items    json.RawMessage `json:"Items"`
	Payments json.RawMessage `json:"Payments"`
}

// FetchDetail: tek bir belgenin kalem ve ödemeleriyle birlikte detayını çeker.
// Belge yoksa ErrNotFound döner.
func (c *Client) FetchDetail(ctx context.Context, orderKey string) (*models.InvoiceDetail, error) {
	sql, err := c.queries.DetailQuery(orderKey)
	if err != nil {
		return nil, err
	}

	result, err := c.execute(ctx, sql)
	if err != nil {
		return nil, err
	}
	if result == "" {
		return nil, ErrNotFound
	}

	var rows []detailRow
	if err := json.Unmarshal([]byte(result), &rows); err != nil {
		return nil, fmt.Errorf("belge detayı çözümlenemedi: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	row := rows[0]
	detail := &models.InvoiceDetail{
		InvoiceHeader: row.InvoiceHeader,
		Items:         []models.InvoiceItem{},
		Payments:      []models.InvoicePayment{},
	}

	if err := decodeNested(row.Items, &detail.Items); err != nil {
		return nil, fmt.Errorf("belge kalemleri çözümlenemedi: %w", err)
	}
	if err := decodeNested(row.Payments, &detail.Payments); err != nil {
		return nil, fmt.Errorf("belge ödemeleri çözümlenemedi: %w", err)
	}
	if detail.Items == nil {
		detail.Items = []models.InvoiceItem{}
	}
	if detail.Payments == nil {
		detail.Payments = []models.InvoicePayment{}
	}

	return detail, nil
}

// decodeNested: alan ya doğrudan dizi ya da dizi içeren bir JSON string'i
// olarak gelir; her iki biçimi de çözümler.
func decodeNested(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		if inner == "" {
			return nil
		}
		return json.Unmarshal([]byte(inner), v)
	}
	return json.Unmarshal(raw, v)
}
