package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/consignment-engine/internal/domain"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetWeeklyOpenDays(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockSettingsRepository) SaveWeeklyOpenDays(ctx context.Context, days map[string]bool) error {
	args := m.Called(ctx, days)
	return args.Error(0)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) CreateSaleItems(ctx context.Context, items []*domain.SaleItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, saleID uuid.UUID) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetItems(ctx context.Context, saleID uuid.UUID) ([]*domain.SaleItem, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SaleItem), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) DecrementQuantity(ctx context.Context, itemID string, qty int) (int, error) {
	args := m.Called(ctx, itemID, qty)
	return args.Int(0), args.Error(1)
}

type MockEarningRepository struct {
	mock.Mock
}

func (m *MockEarningRepository) Create(ctx context.Context, earning *domain.SellerEarning) error {
	args := m.Called(ctx, earning)
	return args.Error(0)
}

func (m *MockEarningRepository) ListUnpaidBySeller(ctx context.Context, sellerID string) ([]*domain.SellerEarning, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SellerEarning), args.Error(1)
}

func (m *MockEarningRepository) CreatePayout(ctx context.Context, payout *domain.Payout, earningIDs []uuid.UUID) error {
	args := m.Called(ctx, payout, earningIDs)
	return args.Error(0)
}

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) GetByID(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Rental, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) CountOverlapping(ctx context.Context, cubbyID uuid.UUID, start, end time.Time) (int, error) {
	args := m.Called(ctx, cubbyID, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockRentalRepository) ExpireEnded(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

type MockCubbyRepository struct {
	mock.Mock
}

func (m *MockCubbyRepository) GetByID(ctx context.Context, cubbyID uuid.UUID) (*domain.Cubby, error) {
	args := m.Called(ctx, cubbyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cubby), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
