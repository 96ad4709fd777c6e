package robotpos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	QueryFileHeaders = "sqlquery-headers.txt"
	QueryFileDetail  = "sqlquery-detail.txt"
)

// QueryStore: RobotPos'a gönderilen SQL şablonlarını diskten okur.
// Şablonlardaki @StartDate / @EndDate / @OrderKey yer tutucuları, ancak
// doğrulanmış değerlerle doldurulur; ham query parametresi hiçbir zaman
// şablona girmez.
type QueryStore struct {
	dir string
}

func NewQueryStore(dir string) *QueryStore {
	return &QueryStore{dir: dir}
}

func (s *QueryStore) load(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("sorgu şablonu okunamadı (%s): %w", name, err)
	}
	return string(b), nil
}

// HeadersQuery: tarih aralığını doğrulayıp başlık sorgusunu üretir.
// Tarihler YYYY-MM-DD formatında olmalıdır.
func (s *QueryStore) HeadersQuery(startDate, endDate string) (string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", fmt.Errorf("%w: startDate %q", ErrInvalidParam, startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return "", fmt.Errorf("%w: endDate %q", ErrInvalidParam, endDate)
	}
	if end.Before(start) {
		return "", fmt.Errorf("%w: endDate startDate'ten önce olamaz", ErrInvalidParam)
	}

	sql, err := s.load(QueryFileHeaders)
	if err != nil {
		return "", err
	}
	sql = strings.ReplaceAll(sql, "@StartDate", "'"+start.Format("2006-01-02")+"'")
	sql = strings.ReplaceAll(sql, "@EndDate", "'"+end.Format("2006-01-02")+"'")
	return sql, nil
}

// DetailQuery: belge anahtarını UUID olarak doğrulayıp detay sorgusunu üretir.
func (s *QueryStore) DetailQuery(orderKey string) (string, error) {
	key, err := uuid.Parse(orderKey)
	if err != nil {
		return "", fmt.Errorf("%w: orderKey %q", ErrInvalidParam, orderKey)
	}

	sql, err := s.load(QueryFileDetail)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(sql, "@OrderKey", "'"+key.String()+"'"), nil
}
