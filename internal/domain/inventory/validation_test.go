package inventory_test

import (
	"errors"
	"testing"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, inventory.ValidateCategory(&entity.Category{Name: "Lácteos", Kind: entity.CategoryKindFood}))

	err := inventory.ValidateCategory(&entity.Category{Name: "  ", Kind: entity.CategoryKindFood})
	assertField(t, err, "name")

	err = inventory.ValidateCategory(&entity.Category{Name: "Varios", Kind: "otros"})
	assertField(t, err, "kind")
}

func TestValidateProduct(t *testing.T) {
	valid := func() *entity.Product {
		p := product("10", "5", "50")
		p.CategoryID = "cat"
		p.UnitCost = d("1.5")
		return p
	}
	require.NoError(t, inventory.ValidateProduct(valid()))

	cases := []struct {
		field  string
		mutate func(p *entity.Product)
	}{
		{"name", func(p *entity.Product) { p.Name = "" }},
		{"category_id", func(p *entity.Product) { p.CategoryID = "" }},
		{"quantity", func(p *entity.Product) { p.Quantity = d("-1") }},
		{"min_threshold", func(p *entity.Product) { p.MinThreshold = d("-1") }},
		{"max_threshold", func(p *entity.Product) { p.MaxThreshold = d("4") }},
		{"unit_cost", func(p *entity.Product) { p.UnitCost = d("-0.01") }},
		{"daily_consumption", func(p *entity.Product) { v := d("-2"); p.AverageDailyConsumption = &v }},
		{"quantity", func(p *entity.Product) { p.Quantity = d("10.00005") }},
		{"unit_cost", func(p *entity.Product) { p.UnitCost = d("1.23456") }},
		{"daily_consumption", func(p *entity.Product) { v := d("0.33333"); p.AverageDailyConsumption = &v }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			p := valid()
			tc.mutate(p)
			assertField(t, inventory.ValidateProduct(p), tc.field)
		})
	}
}

func TestValidateScale(t *testing.T) {
	require.NoError(t, inventory.ValidateScale("amount", d("12.3456")))
	require.NoError(t, inventory.ValidateScale("amount", d("1.50000")))
	assertField(t, inventory.ValidateScale("amount", d("0.00001")), "amount")
}

func TestWeightedAverageCost(t *testing.T) {
	got := inventory.WeightedAverageCost(d("10"), d("2"), d("30"), d("4"))
	assert.True(t, d("3.5").Equal(got), "((10*2)+(30*4))/40, obtenido %s", got)

	got = inventory.WeightedAverageCost(d("0"), d("0"), d("0"), d("9"))
	assert.True(t, d("0").Equal(got), "sin cantidad conserva el costo actual")
}

func assertField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, field, ve.Field)
}
