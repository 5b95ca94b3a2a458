package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/produccion-dashboard/internal/domain/entity"
)

func TestInventoryItem_IsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		minimum  string
		expected bool
	}{
		{"por debajo del mínimo", "2", "5", true},
		{"igual al mínimo", "5", "5", true},
		{"igual con escala distinta", "5.00", "5", true},
		{"por encima del mínimo", "5.01", "5", false},
		{"ambos en cero", "0", "0", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := entity.InventoryItem{
				CurrentStock: decimal.RequireFromString(tc.current),
				MinimumStock: decimal.RequireFromString(tc.minimum),
			}
			assert.Equal(t, tc.expected, item.IsLowStock())
		})
	}
}

func TestIsValidGradeAndItemType(t *testing.T) {
	assert.True(t, entity.IsValidGrade("A"))
	assert.True(t, entity.IsValidGrade("C"))
	assert.False(t, entity.IsValidGrade("a"))
	assert.False(t, entity.IsValidGrade("D"))

	assert.True(t, entity.IsValidItemType(entity.ItemTypeIngredient))
	assert.True(t, entity.IsValidItemType(entity.ItemTypeFinishedProduct))
	assert.False(t, entity.IsValidItemType("batch"))
}
