package robotpos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound: detay sorgusu hiç satır döndürmediğinde verilir.
var ErrNotFound = fmt.Errorf("belge bulunamadı")

// ErrInvalidParam: sorgu parametresi doğrulamadan geçemedi; kullanıcı hatası.
var ErrInvalidParam = fmt.Errorf("sorgu parametresi geçersiz")

// Client: RobotPos sorgu API'sine erişim. Her sorgu tek bir POST isteğidir;
// gövde {"query": "<sql>"}, cevap {"data": [{"Result": "<json>"}]} zarfıdır.
type Client struct {
	apiURL  string
	token   string
	http    *http.Client
	queries *QueryStore
}

func NewClient(apiURL, token, queryDir string) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		queries: NewQueryStore(queryDir),
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryEnvelope struct {
	Data []struct {
		Result string `json:"Result"`
	} `json:"data"`
}

func (c *Client) execute(ctx context.Context, sql string) (string, error) {
	body, err := json.Marshal(queryRequest{Query: sql})
	if err != nil {
		return "", fmt.Errorf("istek gövdesi oluşturulamadı: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("HTTP isteği oluşturulamadı: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("RobotPos isteği başarısız: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("RobotPos cevabı okunamadı: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("RobotPos %d döndü: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("RobotPos cevabı JSON değil: %w", err)
	}
	if len(envelope.Data) == 0 || envelope.Data[0].Result == "" {
		// Sorgu çalıştı ama satır yok; boş sonuç olarak ele alınır
		return "", nil
	}
	return envelope.Data[0].Result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
