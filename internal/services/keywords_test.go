package service_test

import (
	"testing"

	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("Splits on spaces, commas, hyphens and underscores", func(t *testing.T) {
		keywords := service.ExtractKeywords("Hand-Made, Wooden_Chair")
		assert.Equal(t, []string{"hand", "made", "wooden", "chair"}, keywords)
	})

	t.Run("Lowercases tokens", func(t *testing.T) {
		keywords := service.ExtractKeywords("AMUL Butter")
		assert.Equal(t, []string{"amul", "butter"}, keywords)
	})

	t.Run("Deduplicates preserving first-seen order", func(t *testing.T) {
		keywords := service.ExtractKeywords("fresh milk Fresh MILK dairy")
		assert.Equal(t, []string{"fresh", "milk", "dairy"}, keywords)
	})

	t.Run("Collapses separator runs", func(t *testing.T) {
		keywords := service.ExtractKeywords("a,,  --__ b")
		assert.Equal(t, []string{"a", "b"}, keywords)
	})

	t.Run("Empty input yields nil", func(t *testing.T) {
		assert.Nil(t, service.ExtractKeywords(""))
		assert.Nil(t, service.ExtractKeywords("  ,- _ "))
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := service.ExtractKeywords("Organic Green-Tea")
		second := service.ExtractKeywords("organic green tea")
		assert.Equal(t, first, second)
	})
}

func TestSeedCatalogKeywords(t *testing.T) {
	t.Run("Combines name brand and category", func(t *testing.T) {
		keywords := service.SeedCatalogKeywords("Butter 500g", "Amul", "Dairy")
		assert.Equal(t, []string{"butter", "500g", "amul", "dairy"}, keywords)
	})

	t.Run("Skips empty fields", func(t *testing.T) {
		keywords := service.SeedCatalogKeywords("Butter", "", "Dairy")
		assert.Equal(t, []string{"butter", "dairy"}, keywords)
	})

	t.Run("All empty yields nil", func(t *testing.T) {
		assert.Nil(t, service.SeedCatalogKeywords("", "", ""))
	})
}
