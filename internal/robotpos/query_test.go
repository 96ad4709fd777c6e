package robotpos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeQueryDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	headers := "SELECT * FROM OrderHeaders WHERE OrderDate BETWEEN @StartDate AND @EndDate"
	detail := "SELECT * FROM OrderHeaders WHERE OrderKey = @OrderKey"

	require.NoError(t, os.WriteFile(filepath.Join(dir, QueryFileHeaders), []byte(headers), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, QueryFileDetail), []byte(detail), 0o644))
	return dir
}

func TestHeadersQueryBindsValidatedDates(t *testing.T) {
	store := NewQueryStore(writeQueryDir(t))

	sql, err := store.HeadersQuery("2023-07-01", "2023-07-31")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM OrderHeaders WHERE OrderDate BETWEEN '2023-07-01' AND '2023-07-31'", sql)
}

func TestHeadersQueryRejectsBadInput(t *testing.T) {
	store := NewQueryStore(writeQueryDir(t))

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"format dışı tarih", "01.07.2023", "2023-07-31"},
		{"injection denemesi", "2023-07-01'; DROP TABLE x; --", "2023-07-31"},
		{"ters aralık", "2023-07-31", "2023-07-01"},
		{"boş", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.HeadersQuery(tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

func TestDetailQueryBindsValidatedKey(t *testing.T) {
	store := NewQueryStore(writeQueryDir(t))

	sql, err := store.DetailQuery("366C47D9-53A1-4F2E-9C0D-111111111111")
	require.NoError(t, err)
	// uuid.Parse normalize eder; şablona küçük harfli kanonik form girer
	assert.Equal(t, "SELECT * FROM OrderHeaders WHERE OrderKey = '366c47d9-53a1-4f2e-9c0d-111111111111'", sql)
}

func TestDetailQueryRejectsNonUUID(t *testing.T) {
	store := NewQueryStore(writeQueryDir(t))

	_, err := store.DetailQuery("'; DROP TABLE OrderHeaders; --")
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestQueryStoreMissingTemplate(t *testing.T) {
	store := NewQueryStore(t.TempDir())

	_, err := store.HeadersQuery("2023-07-01", "2023-07-31")
	assert.Error(t, err)
}
