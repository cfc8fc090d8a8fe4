package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/consignment-engine/internal/domain"
)

type cubbyRepository struct {
	db *sqlx.DB
}

func NewCubbyRepository(db *sqlx.DB) CubbyRepository {
	return &cubbyRepository{db: db}
}

func (r *cubbyRepository) GetByID(ctx context.Context, cubbyID uuid.UUID) (*domain.Cubby, error) {
	query := `
		SELECT id, label, status, created_at
		FROM cubbies
		WHERE id = $1
	`

	var cubby domain.Cubby
	err := r.db.GetContext(ctx, &cubby, query, cubbyID)
	if err != nil {
		return nil, err
	}

	return &cubby, nil
}
