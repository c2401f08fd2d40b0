package models_test

import (
	"testing"

	"github.com/homebase-labs/seller-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("Partial last page rounds up", func(t *testing.T) {
		p := models.NewPagination(1, 20, 45)

		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 45, p.TotalProducts)
		assert.True(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})

	t.Run("Last page has no next", func(t *testing.T) {
		p := models.NewPagination(3, 20, 45)

		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPrevPage)
	})

	t.Run("Empty result set", func(t *testing.T) {
		p := models.NewPagination(1, 20, 0)

		assert.Zero(t, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{"Valid input passes through", 2, 15, 2, 15},
		{"Zero page clamps to one", 0, 15, 1, 15},
		{"Negative page clamps to one", -3, 15, 1, 15},
		{"Zero limit takes the default", 2, 0, 2, 20},
		{"Negative limit takes the default", 2, -1, 2, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := models.NormalizePage(tt.page, tt.limit, 20)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
