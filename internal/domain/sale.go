package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the tender used at checkout.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodOther PaymentMethod = "other"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOther:
		return true
	}
	return false
}

const (
	ItemStatusAvailable = "available"
	ItemStatusSold      = "sold"
)

// CartLine is one item in a checkout cart, as sent by the point of sale.
type CartLine struct {
	ItemID         string
	UnitPrice      decimal.Decimal
	Quantity       int // stock on hand before the sale
	CartQuantity   int
	SellerID       *string
	CommissionRate *decimal.Decimal
}

// SettledLine is the monetary breakdown of a single cart line.
type SettledLine struct {
	ItemID            string          `json:"item_id"`
	SellerID          *string         `json:"seller_id,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CartQuantity      int             `json:"quantity"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	ResultingQuantity int             `json:"resulting_quantity"`
}

// SaleSettlement is the computed outcome of a checkout. SaleID stays empty until
// the sale header has been stored.
type SaleSettlement struct {
	SaleID        string          `json:"sale_id,omitempty"`
	Lines         []SettledLine   `json:"lines"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// Sale is the persisted sale header
type Sale struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	PaymentMethod string          `json:"payment_method" db:"payment_method"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// SaleItem is one persisted line of a sale
type SaleItem struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	SaleID    uuid.UUID       `json:"sale_id" db:"sale_id"`
	ItemID    string          `json:"item_id" db:"item_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	PriceSold decimal.Decimal `json:"price_sold" db:"price_sold"`
}

// DTOs for requests and responses

type CartLineRequest struct {
	ItemID         string           `json:"itemId" validate:"required"`
	CartQuantity   int              `json:"cartQuantity" validate:"gt=0"`
	Price          decimal.Decimal  `json:"price" validate:"decimal_gte=0"`
	Quantity       int              `json:"quantity" validate:"gt=0"`
	SellerID       *string          `json:"seller_id,omitempty"`
	CommissionRate *decimal.Decimal `json:"commission_rate,omitempty" validate:"omitempty,decimal_gte=0,decimal_lte=1"`
}

type CheckoutRequest struct {
	Items         []CartLineRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card other"`
}

// Receipt is what the point of sale renders after checkout. Warnings lists the
// persistence steps that failed after the sale header was stored.
type Receipt struct {
	Sale       *Sale           `json:"sale"`
	Settlement *SaleSettlement `json:"settlement"`
	Warnings   []string        `json:"warnings,omitempty"`
}

type SaleDetailResponse struct {
	Sale  *Sale       `json:"sale"`
	Items []*SaleItem `json:"items"`
}
