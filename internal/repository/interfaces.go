package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/segyhp/consignment-engine/internal/domain"
)

// SettingsRepository stores shop-wide settings
type SettingsRepository interface {
	// GetWeeklyOpenDays returns the stored weekday → open map, empty when never saved
	GetWeeklyOpenDays(ctx context.Context) (map[string]bool, error)

	// SaveWeeklyOpenDays replaces the stored weekday → open map
	SaveWeeklyOpenDays(ctx context.Context, days map[string]bool) error
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// CreateSale inserts the sale header and fills in its generated ID and timestamp
	CreateSale(ctx context.Context, sale *domain.Sale) error

	// CreateSaleItems inserts all lines of a sale
	CreateSaleItems(ctx context.Context, items []*domain.SaleItem) error

	// GetByID retrieves a sale header
	GetByID(ctx context.Context, saleID uuid.UUID) (*domain.Sale, error)

	// GetItems retrieves the lines of a sale
	GetItems(ctx context.Context, saleID uuid.UUID) ([]*domain.SaleItem, error)
}

// ItemRepository defines the interface for inventory operations
type ItemRepository interface {
	// DecrementQuantity removes qty units from stock only if that many are on hand,
	// returning the remaining quantity
	DecrementQuantity(ctx context.Context, itemID string, qty int) (int, error)
}

// EarningRepository defines the interface for seller earnings and payouts
type EarningRepository interface {
	// Create inserts a seller earning
	Create(ctx context.Context, earning *domain.SellerEarning) error

	// ListUnpaidBySeller retrieves the earnings not yet paid out to a seller
	ListUnpaidBySeller(ctx context.Context, sellerID string) ([]*domain.SellerEarning, error)

	// CreatePayout records a payout and marks the given earnings as paid by it
	CreatePayout(ctx context.Context, payout *domain.Payout, earningIDs []uuid.UUID) error
}

// RentalRepository defines the interface for cubby rental data operations
type RentalRepository interface {
	// Create inserts a rental and fills in its generated ID and timestamps
	Create(ctx context.Context, rental *domain.Rental) error

	// GetByID retrieves a rental
	GetByID(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error)

	// ListBySeller retrieves a seller's rentals, newest first
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Rental, error)

	// CountOverlapping counts active rentals of a cubby intersecting [start, end]
	CountOverlapping(ctx context.Context, cubbyID uuid.UUID, start, end time.Time) (int, error)

	// ExpireEnded marks active rentals whose end date is before asOf as expired
	ExpireEnded(ctx context.Context, asOf time.Time) (int64, error)
}

// CubbyRepository defines the interface for cubby lookups
type CubbyRepository interface {
	// GetByID retrieves a cubby
	GetByID(ctx context.Context, cubbyID uuid.UUID) (*domain.Cubby, error)
}
