package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EarningStatusUnpaid = "unpaid"
	EarningStatusPaid   = "paid"
)

// SellerEarning is the seller's share of one sold cart line
type SellerEarning struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	SellerID         string          `json:"seller_id" db:"seller_id"`
	SaleID           uuid.UUID       `json:"sale_id" db:"sale_id"`
	ItemID           string          `json:"item_id" db:"item_id"`
	GrossAmount      decimal.Decimal `json:"gross_amount" db:"gross_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount" db:"commission_amount"`
	NetAmount        decimal.Decimal `json:"net_amount" db:"net_amount"`
	Status           string          `json:"status" db:"status"`
	PayoutID         *uuid.UUID      `json:"payout_id,omitempty" db:"payout_id"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// Payout settles a batch of unpaid earnings with a seller
type Payout struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	SellerID  string          `json:"seller_id" db:"seller_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Method    string          `json:"method" db:"method"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type SellerBalance struct {
	SellerID       string          `json:"seller_id"`
	UnpaidEarnings int             `json:"unpaid_earnings"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	Commission     decimal.Decimal `json:"commission"`
	AmountOwed     decimal.Decimal `json:"amount_owed"`
}

type CreatePayoutRequest struct {
	Method string `json:"method" validate:"required,oneof=cash check transfer"`
}
