package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, email, username, full_name, created_at, updated_at
        FROM user_account
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
