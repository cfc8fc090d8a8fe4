package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

type itemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) ItemRepository {
	return &itemRepository{db: db}
}

// DecrementQuantity only succeeds while at least qty units are on hand, so two
// checkouts racing for the last unit cannot both take it.
func (r *itemRepository) DecrementQuantity(ctx context.Context, itemID string, qty int) (int, error) {
	query := `
		UPDATE items
		SET quantity = quantity - $2,
		    status = CASE WHEN quantity - $2 = 0 THEN 'sold' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity
	`

	var remaining int
	err := r.db.QueryRowxContext(ctx, query, itemID, qty).Scan(&remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, customError.WrapInsufficientStock(itemID, qty)
	}
	if err != nil {
		return 0, err
	}

	return remaining, nil
}
