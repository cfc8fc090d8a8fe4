// Package settlement splits a checkout cart into gross, commission and net
// amounts per line. It performs no I/O.
package settlement

import (
	"strings"

	"github.com/segyhp/consignment-engine/internal/domain"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
	"github.com/segyhp/consignment-engine/pkg/utils"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the shop's share when neither the line nor the engine sets one.
var DefaultCommissionRate = decimal.RequireFromString("0.15")

type Engine struct {
	DefaultCommissionRate decimal.Decimal
}

// NewEngine returns an engine applying rate to lines without their own commission
// rate. A zero rate falls back to DefaultCommissionRate.
func NewEngine(rate decimal.Decimal) *Engine {
	if rate.IsZero() {
		rate = DefaultCommissionRate
	}
	return &Engine{DefaultCommissionRate: rate}
}

// Settle validates the whole cart and then computes the settlement line by line,
// preserving input order. Invalid input fails before any line is produced.
func (e *Engine) Settle(lines []domain.CartLine, method domain.PaymentMethod) (*domain.SaleSettlement, error) {
	if err := validate(lines, method); err != nil {
		return nil, err
	}

	defaultRate := e.DefaultCommissionRate
	if defaultRate.IsZero() {
		defaultRate = DefaultCommissionRate
	}

	settlement := &domain.SaleSettlement{
		Lines:         make([]domain.SettledLine, 0, len(lines)),
		TotalAmount:   decimal.Zero,
		PaymentMethod: method,
	}

	for _, line := range lines {
		rate := defaultRate
		if line.CommissionRate != nil {
			rate = *line.CommissionRate
		}

		gross := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.CartQuantity)))
		commission := utils.RoundCurrency(gross.Mul(rate))

		settlement.Lines = append(settlement.Lines, domain.SettledLine{
			ItemID:            line.ItemID,
			SellerID:          line.SellerID,
			UnitPrice:         line.UnitPrice,
			CartQuantity:      line.CartQuantity,
			CommissionRate:    rate,
			GrossAmount:       gross,
			CommissionAmount:  commission,
			NetAmount:         gross.Sub(commission),
			ResultingQuantity: line.Quantity - line.CartQuantity,
		})
		settlement.TotalAmount = settlement.TotalAmount.Add(gross)
	}

	return settlement, nil
}

func validate(lines []domain.CartLine, method domain.PaymentMethod) error {
	if len(lines) == 0 {
		return customError.WrapValidation("cart is empty")
	}
	if !method.Valid() {
		return customError.WrapValidation("unsupported payment method %q", method)
	}

	one := decimal.NewFromInt(1)
	for i, line := range lines {
		switch {
		case strings.TrimSpace(line.ItemID) == "":
			return customError.WrapValidation("line %d: item id is required", i+1)
		case line.UnitPrice.IsNegative():
			return customError.WrapValidation("line %d: price %s is negative", i+1, line.UnitPrice)
		case line.CartQuantity < 1:
			return customError.WrapValidation("line %d: cart quantity must be at least 1", i+1)
		case line.Quantity < 1:
			return customError.WrapValidation("line %d: item %s is out of stock", i+1, line.ItemID)
		case line.CartQuantity > line.Quantity:
			return customError.WrapValidation("line %d: cart quantity %d exceeds stock %d for item %s",
				i+1, line.CartQuantity, line.Quantity, line.ItemID)
		case line.CommissionRate != nil && (line.CommissionRate.IsNegative() || line.CommissionRate.GreaterThan(one)):
			return customError.WrapValidation("line %d: commission rate %s is outside [0, 1]", i+1, line.CommissionRate)
		}
	}

	return nil
}
