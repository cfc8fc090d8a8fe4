package settlement

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/consignment-engine/internal/domain"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func TestSettle_SingleSellerLine(t *testing.T) {
	engine := NewEngine(decimal.Zero)

	result, err := engine.Settle([]domain.CartLine{
		{
			ItemID:         "ITEM-1",
			UnitPrice:      dec("20.00"),
			Quantity:       10,
			CartQuantity:   3,
			SellerID:       ptr("S1"),
			CommissionRate: ptr(dec("0.15")),
		},
	}, domain.PaymentMethodCash)

	require.NoError(t, err)
	require.Len(t, result.Lines, 1)

	line := result.Lines[0]
	assert.True(t, line.GrossAmount.Equal(dec("60.00")))
	assert.True(t, line.CommissionAmount.Equal(dec("9.00")))
	assert.True(t, line.NetAmount.Equal(dec("51.00")))
	assert.Equal(t, 7, line.ResultingQuantity)
	assert.True(t, result.TotalAmount.Equal(dec("60.00")))
	assert.Equal(t, domain.PaymentMethodCash, result.PaymentMethod)
	assert.Empty(t, result.SaleID)
}

func TestSettle_Amounts(t *testing.T) {
	tests := []struct {
		name       string
		line       domain.CartLine
		engineRate decimal.Decimal
		commission string
		net        string
	}{
		{
			name:       "default rate applies when line has none",
			line:       domain.CartLine{ItemID: "A", UnitPrice: dec("10.00"), Quantity: 1, CartQuantity: 1},
			commission: "1.50",
			net:        "8.50",
		},
		{
			name:       "engine rate overrides package default",
			line:       domain.CartLine{ItemID: "A", UnitPrice: dec("10.00"), Quantity: 1, CartQuantity: 1},
			engineRate: dec("0.25"),
			commission: "2.50",
			net:        "7.50",
		},
		{
			name:       "half a cent rounds up",
			line:       domain.CartLine{ItemID: "A", UnitPrice: dec("0.10"), Quantity: 1, CartQuantity: 1},
			commission: "0.02",
			net:        "0.08",
		},
		{
			name:       "below half a cent rounds down",
			line:       domain.CartLine{ItemID: "A", UnitPrice: dec("1.01"), Quantity: 5, CartQuantity: 1},
			commission: "0.15",
			net:        "0.86",
		},
		{
			name:       "zero commission rate on line",
			line:       domain.CartLine{ItemID: "A", UnitPrice: dec("4.99"), Quantity: 2, CartQuantity: 2, CommissionRate: ptr(decimal.Zero)},
			commission: "0",
			net:        "9.98",
		},
		{
			name:       "full commission rate on line",
			line:       domain.CartLine{ItemID: "A", UnitPrice: dec("4.99"), Quantity: 2, CartQuantity: 2, CommissionRate: ptr(dec("1"))},
			commission: "9.98",
			net:        "0",
		},
		{
			name:       "free item",
			line:       domain.CartLine{ItemID: "A", UnitPrice: decimal.Zero, Quantity: 1, CartQuantity: 1},
			commission: "0",
			net:        "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewEngine(tt.engineRate).Settle([]domain.CartLine{tt.line}, domain.PaymentMethodCard)
			require.NoError(t, err)

			line := result.Lines[0]
			assert.True(t, line.CommissionAmount.Equal(dec(tt.commission)), "commission %s", line.CommissionAmount)
			assert.True(t, line.NetAmount.Equal(dec(tt.net)), "net %s", line.NetAmount)
			assert.True(t, line.NetAmount.Add(line.CommissionAmount).Equal(line.GrossAmount))
		})
	}
}

func TestSettle_MultipleLines(t *testing.T) {
	lines := []domain.CartLine{
		{ItemID: "A", UnitPrice: dec("12.35"), Quantity: 4, CartQuantity: 3, SellerID: ptr("S1")},
		{ItemID: "B", UnitPrice: dec("0.99"), Quantity: 1, CartQuantity: 1},
		{ItemID: "C", UnitPrice: dec("7.77"), Quantity: 9, CartQuantity: 7, SellerID: ptr("S2"), CommissionRate: ptr(dec("0.333"))},
	}

	result, err := NewEngine(decimal.Zero).Settle(lines, domain.PaymentMethodOther)
	require.NoError(t, err)
	require.Len(t, result.Lines, 3)

	total := decimal.Zero
	for i, line := range result.Lines {
		assert.Equal(t, lines[i].ItemID, line.ItemID, "input order is kept")
		assert.True(t, line.NetAmount.Add(line.CommissionAmount).Equal(line.GrossAmount))
		assert.Equal(t, lines[i].Quantity-lines[i].CartQuantity, line.ResultingQuantity)
		total = total.Add(line.GrossAmount)
	}
	assert.True(t, result.TotalAmount.Equal(total))
	assert.True(t, result.TotalAmount.Equal(dec("92.43"))) // 37.05 + 0.99 + 54.39
}

func TestSettle_IsDeterministic(t *testing.T) {
	lines := []domain.CartLine{
		{ItemID: "A", UnitPrice: dec("5.55"), Quantity: 3, CartQuantity: 2, SellerID: ptr("S1")},
	}
	engine := NewEngine(decimal.Zero)

	first, err := engine.Settle(lines, domain.PaymentMethodCash)
	require.NoError(t, err)
	second, err := engine.Settle(lines, domain.PaymentMethodCash)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSettle_ValidationErrors(t *testing.T) {
	valid := domain.CartLine{ItemID: "A", UnitPrice: dec("1.00"), Quantity: 2, CartQuantity: 1}

	tests := []struct {
		name   string
		lines  []domain.CartLine
		method domain.PaymentMethod
	}{
		{name: "empty cart", lines: nil, method: domain.PaymentMethodCash},
		{name: "unknown payment method", lines: []domain.CartLine{valid}, method: "bitcoin"},
		{
			name:   "cart quantity exceeds stock",
			lines:  []domain.CartLine{valid, {ItemID: "B", UnitPrice: dec("1"), Quantity: 2, CartQuantity: 3}},
			method: domain.PaymentMethodCash,
		},
		{
			name:   "negative price",
			lines:  []domain.CartLine{{ItemID: "B", UnitPrice: dec("-0.01"), Quantity: 1, CartQuantity: 1}},
			method: domain.PaymentMethodCash,
		},
		{
			name:   "zero cart quantity",
			lines:  []domain.CartLine{{ItemID: "B", UnitPrice: dec("1"), Quantity: 1, CartQuantity: 0}},
			method: domain.PaymentMethodCash,
		},
		{
			name:   "missing item id",
			lines:  []domain.CartLine{{ItemID: " ", UnitPrice: dec("1"), Quantity: 1, CartQuantity: 1}},
			method: domain.PaymentMethodCash,
		},
		{
			name:   "commission rate above one",
			lines:  []domain.CartLine{{ItemID: "B", UnitPrice: dec("1"), Quantity: 1, CartQuantity: 1, CommissionRate: ptr(dec("1.01"))}},
			method: domain.PaymentMethodCash,
		},
		{
			name:   "negative commission rate",
			lines:  []domain.CartLine{{ItemID: "B", UnitPrice: dec("1"), Quantity: 1, CartQuantity: 1, CommissionRate: ptr(dec("-0.1"))}},
			method: domain.PaymentMethodCash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewEngine(decimal.Zero).Settle(tt.lines, tt.method)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, customError.ErrValidation), "got %v", err)
		})
	}
}
