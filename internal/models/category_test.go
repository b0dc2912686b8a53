package models_test

import (
	"testing"

	"github.com/sbilibin2017/finance-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, c := range models.Categories {
		got, err := models.ParseCategory(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	tests := []string{"", "food", "FOOD", "Groceries", "Food "}

	for _, s := range tests {
		got, err := models.ParseCategory(s)
		assert.Error(t, err, "value %q", s)
		assert.Empty(t, got)
	}
}
