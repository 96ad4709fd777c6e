package models

import "time"

type QueryType string

const (
	QueryTypeHeaders QueryType = "headers"
	QueryTypeDetail  QueryType = "detail"
)

// FetchLog: RobotPos'a gönderilen her sorgunun kaydı.
// Belge verisi saklanmaz, sadece kimin ne zaman neyi çektiği tutulur.
type FetchLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Hangi kullanıcı?
	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // kullanıcı adı (denormalize)

	// Sorgu tipi: headers / detail
	QueryType QueryType `gorm:"size:20;index" json:"query_type"`

	// headers sorguları için tarih aralığı
	StartDate string `gorm:"size:10" json:"start_date"`
	EndDate   string `gorm:"size:10" json:"end_date"`

	// detail sorguları için belge anahtarı
	OrderKey string `gorm:"size:36;index" json:"order_key"`

	RowCount   int   `json:"row_count"`
	DurationMS int64 `json:"duration_ms"`

	Success   bool   `json:"success"`
	ErrorText string `gorm:"size:255" json:"error_text"`
}
