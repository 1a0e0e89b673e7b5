package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FavoriteRecord, error) {
	const query = `
		SELECT id, owner_id, identity, provider, title, image_url, price, outbound_link, type_tag, created_at
		FROM offer_favorite
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	records := make([]domain.FavoriteRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, ownerID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FavoriteRepository) Insert(ctx context.Context, record domain.FavoriteRecord) (*domain.FavoriteRecord, error) {
	const query = `
		INSERT INTO offer_favorite (owner_id, identity, provider, title, image_url, price, outbound_link, type_tag)
		VALUES (:owner_id, :identity, :provider, :title, :image_url, :price, :outbound_link, :type_tag)
		RETURNING id, owner_id, identity, provider, title, image_url, price, outbound_link, type_tag, created_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, record)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, sql.ErrNoRows
	}
	var saved domain.FavoriteRecord
	if err := rows.StructScan(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *FavoriteRepository) DeleteByPrimaryKey(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM offer_favorite WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
