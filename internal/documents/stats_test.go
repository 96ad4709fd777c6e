package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	got := Stats(sampleHeaders())

	assert.Equal(t, 3, got.DocumentCount)
	assert.InDelta(t, 350.0, got.TotalAmount, 1e-9)
	assert.Equal(t, 2, got.EFaturaCount)
	assert.Equal(t, 1, got.EArsivCount)
	assert.Equal(t, 1, got.TransferredCount)
}

func TestStatsEmpty(t *testing.T) {
	got := Stats(nil)
	assert.Zero(t, got.DocumentCount)
	assert.Zero(t, got.TotalAmount)
}
