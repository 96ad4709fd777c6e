package audit

import (
	"fmt"
	"time"

	"github.com/byildiz78/td-invoice/internal/database"
	"github.com/byildiz78/td-invoice/internal/models"
)

type LogOptions struct {
	UserID    uint
	UserName  string
	QueryType models.QueryType
	StartDate string
	EndDate   string
	OrderKey  string
	RowCount  int
	Duration  time.Duration
	Err       error
}

// WriteLog: upstream sorgusunu günlüğe yazar. Günlük yazılamasa bile sorgu
// sonucu kullanıcıya döner; burada dönen hata sadece loglama içindir.
func WriteLog(opts LogOptions) error {
	if database.DB == nil {
		return fmt.Errorf("veritabanı bağlantısı hazır değil")
	}

	entry := models.FetchLog{
		UserID:     opts.UserID,
		UserName:   opts.UserName,
		QueryType:  opts.QueryType,
		StartDate:  opts.StartDate,
		EndDate:    opts.EndDate,
		OrderKey:   opts.OrderKey,
		RowCount:   opts.RowCount,
		DurationMS: opts.Duration.Milliseconds(),
		Success:    opts.Err == nil,
	}
	if opts.Err != nil {
		msg := opts.Err.Error()
		if len(msg) > 255 {
			msg = msg[:255]
		}
		entry.ErrorText = msg
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("sorgu kaydı yazılamadı: %w", err)
	}

	return nil
}
