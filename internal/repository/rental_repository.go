package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/consignment-engine/internal/domain"
)

type rentalRepository struct {
	db *sqlx.DB
}

func NewRentalRepository(db *sqlx.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `
		INSERT INTO rentals (cubby_id, seller_id, start_date, end_date, open_days, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRowxContext(ctx, query,
		rental.CubbyID,
		rental.SellerID,
		rental.StartDate,
		rental.EndDate,
		rental.OpenDays,
		rental.Status,
	).Scan(&rental.ID, &rental.CreatedAt, &rental.UpdatedAt)
}

func (r *rentalRepository) GetByID(ctx context.Context, rentalID uuid.UUID) (*domain.Rental, error) {
	query := `
		SELECT id, cubby_id, seller_id, start_date, end_date, open_days, status, created_at, updated_at
		FROM rentals
		WHERE id = $1
	`

	var rental domain.Rental
	err := r.db.GetContext(ctx, &rental, query, rentalID)
	if err != nil {
		return nil, err
	}

	return &rental, nil
}

func (r *rentalRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Rental, error) {
	query := `
		SELECT id, cubby_id, seller_id, start_date, end_date, open_days, status, created_at, updated_at
		FROM rentals
		WHERE seller_id = $1
		ORDER BY start_date DESC
	`

	var rentals []*domain.Rental
	err := r.db.SelectContext(ctx, &rentals, query, sellerID)
	if err != nil {
		return nil, err
	}

	return rentals, nil
}

func (r *rentalRepository) CountOverlapping(ctx context.Context, cubbyID uuid.UUID, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM rentals
		WHERE cubby_id = $1 AND status = 'active' AND start_date <= $3 AND end_date >= $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, cubbyID, start, end)
	return count, err
}

func (r *rentalRepository) ExpireEnded(ctx context.Context, asOf time.Time) (int64, error) {
	query := `
		UPDATE rentals
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND end_date < $1
	`

	result, err := r.db.ExecContext(ctx, query, asOf)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
