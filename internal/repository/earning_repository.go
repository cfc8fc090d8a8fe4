package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/segyhp/consignment-engine/internal/domain"
)

type earningRepository struct {
	db *sqlx.DB
}

func NewEarningRepository(db *sqlx.DB) EarningRepository {
	return &earningRepository{db: db}
}

func (r *earningRepository) Create(ctx context.Context, earning *domain.SellerEarning) error {
	query := `
		INSERT INTO seller_earnings (seller_id, sale_id, item_id, gross_amount, commission_amount, net_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return r.db.QueryRowxContext(ctx, query,
		earning.SellerID,
		earning.SaleID,
		earning.ItemID,
		earning.GrossAmount,
		earning.CommissionAmount,
		earning.NetAmount,
		earning.Status,
	).Scan(&earning.ID, &earning.CreatedAt)
}

func (r *earningRepository) ListUnpaidBySeller(ctx context.Context, sellerID string) ([]*domain.SellerEarning, error) {
	query := `
		SELECT id, seller_id, sale_id, item_id, gross_amount, commission_amount, net_amount, status, payout_id, created_at
		FROM seller_earnings
		WHERE seller_id = $1 AND status = 'unpaid'
		ORDER BY created_at
	`

	var earnings []*domain.SellerEarning
	err := r.db.SelectContext(ctx, &earnings, query, sellerID)
	if err != nil {
		return nil, err
	}

	return earnings, nil
}

func (r *earningRepository) CreatePayout(ctx context.Context, payout *domain.Payout, earningIDs []uuid.UUID) error {
	insertPayout := `
		INSERT INTO payouts (id, seller_id, amount, method)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	markPaid := `
		UPDATE seller_earnings
		SET status = 'paid', payout_id = $1
		WHERE id = ANY($2) AND seller_id = $3 AND status = 'unpaid'
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, insertPayout,
		payout.ID,
		payout.SellerID,
		payout.Amount,
		payout.Method,
	).Scan(&payout.CreatedAt)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, markPaid, payout.ID, pq.Array(earningIDs), payout.SellerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	// another payout claimed some of these earnings first
	if affected != int64(len(earningIDs)) {
		return fmt.Errorf("expected to mark %d earnings paid, marked %d", len(earningIDs), affected)
	}

	return tx.Commit()
}
