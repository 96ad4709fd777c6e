package documents

import (
	"testing"

	"github.com/byildiz78/td-invoice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHeaders() []models.InvoiceHeader {
	return []models.InvoiceHeader{
		{
			OrderKey:      "366c47d9-53a1-4f2e-9c0d-111111111111",
			OrderID:       1001,
			BranchName:    "Kadıköy",
			Type:          models.InvoiceTypeEFatura,
			InvoiceTotal:  100,
			InvoiceDate:   "2023-07-01T10:00:00",
			CustomerName:  "Acme Gıda A.Ş.",
			CustomerTaxNo: "1234567890",
			IsTransferred: 1,
		},
		{
			OrderKey:      "47ab11ce-0000-4f2e-9c0d-222222222222",
			OrderID:       1002,
			BranchName:    "Beşiktaş",
			Type:          models.InvoiceTypeEArsiv,
			InvoiceTotal:  50,
			InvoiceDate:   "2023-07-02T12:30:00",
			CustomerName:  "Mehmet Yılmaz",
			CustomerTaxNo: "98765432100",
			IsTransferred: 0,
		},
		{
			OrderKey:      "58cd22df-0000-4f2e-9c0d-333333333333",
			OrderID:       2001,
			BranchName:    "Kadıköy",
			Type:          models.InvoiceTypeEFatura,
			InvoiceTotal:  200,
			InvoiceDate:   "2023-07-03T09:15:00",
			CustomerName:  "Beta Lojistik Ltd.",
			CustomerTaxNo: "5554443322",
			IsTransferred: 0,
		},
	}
}

func TestFilterEmptyTermReturnsInputOrder(t *testing.T) {
	docs := sampleHeaders()

	got := Filter(docs, "", TransferAll)
	require.Len(t, got, len(docs))
	for i := range docs {
		assert.Equal(t, docs[i].OrderKey, got[i].OrderKey)
	}

	// Sadece boşluktan oluşan terim de filtre sayılmaz
	got = Filter(docs, "   ", TransferAll)
	assert.Len(t, got, len(docs))
}

func TestFilterSearchSurface(t *testing.T) {
	docs := sampleHeaders()

	tests := []struct {
		name string
		term string
		want []int // beklenen OrderID listesi
	}{
		{"müşteri adı, harf duyarsız", "acme", []int{1001}},
		{"belge no", "1002", []int{1002}},
		{"şube adı", "Kadıköy", []int{1001, 2001}},
		{"belge türü", "fatura", []int{1001, 2001}},
		{"vergi no birebir", "9876543", []int{1002}},
		{"eşleşme yok", "olmayan-kayit", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(docs, tt.term, TransferAll)
			ids := make([]int, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.OrderID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestFilterOrderKeyIsNotSearchable(t *testing.T) {
	docs := sampleHeaders()

	// "366c47d9" sadece ilk kaydın OrderKey'inde geçiyor; arama yüzeyi
	// OrderKey'i kapsamadığından sonuç boş olmalı
	got := Filter(docs, "366c47d9", TransferAll)
	assert.Empty(t, got)
}

func TestFilterTransferStatus(t *testing.T) {
	docs := sampleHeaders()

	transferred := Filter(docs, "", TransferTransferred)
	require.Len(t, transferred, 1)
	assert.Equal(t, 1001, transferred[0].OrderID)

	notTransferred := Filter(docs, "", TransferNotTransferred)
	require.Len(t, notTransferred, 2)
	assert.Equal(t, 1002, notTransferred[0].OrderID)
	assert.Equal(t, 2001, notTransferred[1].OrderID)
}

func TestFilterPredicatesCompose(t *testing.T) {
	docs := sampleHeaders()

	got := Filter(docs, "Kadıköy", TransferNotTransferred)
	require.Len(t, got, 1)
	assert.Equal(t, 2001, got[0].OrderID)
}

func TestFilterIdempotent(t *testing.T) {
	docs := sampleHeaders()

	once := Filter(docs, "fatura", TransferNotTransferred)
	twice := Filter(once, "fatura", TransferNotTransferred)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	docs := sampleHeaders()
	want := sampleHeaders()

	_ = Filter(docs, "acme", TransferTransferred)
	assert.Equal(t, want, docs)
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, "acme", TransferAll)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseTransferStatus(t *testing.T) {
	assert.Equal(t, TransferAll, ParseTransferStatus(""))
	assert.Equal(t, TransferAll, ParseTransferStatus("hepsi"))
	assert.Equal(t, TransferTransferred, ParseTransferStatus("transferred"))
	assert.Equal(t, TransferNotTransferred, ParseTransferStatus("not-transferred"))
}
