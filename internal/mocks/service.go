package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/consignment-engine/internal/domain"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) QuotePeriod(ctx context.Context, start time.Time, openDays int) (*domain.RentalPeriod, error) {
	args := m.Called(ctx, start, openDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPeriod), args.Error(1)
}

func (m *MockRentalService) CountOpenDays(ctx context.Context, start, end time.Time) int {
	args := m.Called(ctx, start, end)
	return args.Int(0)
}

func (m *MockRentalService) CreateRental(ctx context.Context, request *domain.CreateRentalRequest) (*domain.Rental, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) GetRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ListSellerRentals(ctx context.Context, sellerID string) ([]*domain.Rental, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rental), args.Error(1)
}

type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Checkout(ctx context.Context, request *domain.CheckoutRequest) (*domain.Receipt, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockSaleService) GetSale(ctx context.Context, saleID string) (*domain.SaleDetailResponse, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleDetailResponse), args.Error(1)
}

type MockPayoutService struct {
	mock.Mock
}

func (m *MockPayoutService) GetSellerBalance(ctx context.Context, sellerID string) (*domain.SellerBalance, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellerBalance), args.Error(1)
}

func (m *MockPayoutService) CreatePayout(ctx context.Context, sellerID string, request *domain.CreatePayoutRequest) (*domain.Payout, error) {
	args := m.Called(ctx, sellerID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetOpenDays(ctx context.Context) map[string]bool {
	args := m.Called(ctx)
	return args.Get(0).(map[string]bool)
}

func (m *MockSettingsService) UpdateOpenDays(ctx context.Context, days map[string]bool) (map[string]bool, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}
