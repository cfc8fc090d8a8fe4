package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/segyhp/consignment-engine/internal/domain"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

// Services the handlers depend on

type RentalService interface {
	QuotePeriod(ctx context.Context, start time.Time, openDays int) (*domain.RentalPeriod, error)
	CountOpenDays(ctx context.Context, start, end time.Time) int
	CreateRental(ctx context.Context, request *domain.CreateRentalRequest) (*domain.Rental, error)
	GetRental(ctx context.Context, rentalID string) (*domain.Rental, error)
	ListSellerRentals(ctx context.Context, sellerID string) ([]*domain.Rental, error)
}

type SaleService interface {
	Checkout(ctx context.Context, request *domain.CheckoutRequest) (*domain.Receipt, error)
	GetSale(ctx context.Context, saleID string) (*domain.SaleDetailResponse, error)
}

type PayoutService interface {
	GetSellerBalance(ctx context.Context, sellerID string) (*domain.SellerBalance, error)
	CreatePayout(ctx context.Context, sellerID string, request *domain.CreatePayoutRequest) (*domain.Payout, error)
}

type SettingsService interface {
	GetOpenDays(ctx context.Context) map[string]bool
	UpdateOpenDays(ctx context.Context, days map[string]bool) (map[string]bool, error)
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags
func decodeAndValidate(r *http.Request, v *validator.Validate, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return customError.WrapValidation("invalid request body: %v", err)
	}
	if err := v.Struct(dst); err != nil {
		return customError.WrapValidation("%v", err)
	}
	return nil
}
