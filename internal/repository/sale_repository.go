package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/consignment-engine/internal/domain"
)

type saleRepository struct {
	db *sqlx.DB
}

func NewSaleRepository(db *sqlx.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	query := `
		INSERT INTO sales (total_amount, payment_method)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return r.db.QueryRowxContext(ctx, query, sale.TotalAmount, sale.PaymentMethod).
		Scan(&sale.ID, &sale.CreatedAt)
}

func (r *saleRepository) CreateSaleItems(ctx context.Context, items []*domain.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, item_id, quantity, price_sold)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		err = tx.QueryRowxContext(ctx, query,
			item.SaleID,
			item.ItemID,
			item.Quantity,
			item.PriceSold,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *saleRepository) GetByID(ctx context.Context, saleID uuid.UUID) (*domain.Sale, error) {
	query := `
		SELECT id, total_amount, payment_method, created_at
		FROM sales
		WHERE id = $1
	`

	var sale domain.Sale
	err := r.db.GetContext(ctx, &sale, query, saleID)
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (r *saleRepository) GetItems(ctx context.Context, saleID uuid.UUID) ([]*domain.SaleItem, error) {
	query := `
		SELECT id, sale_id, item_id, quantity, price_sold
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY item_id
	`

	var items []*domain.SaleItem
	err := r.db.SelectContext(ctx, &items, query, saleID)
	if err != nil {
		return nil, err
	}

	return items, nil
}
