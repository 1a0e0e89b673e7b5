package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepo(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	const query = `
        SELECT id, user_id, token, created_at, expires_at, is_active
        FROM sessions
        WHERE token = $1 AND is_active = true AND expires_at > NOW()
    `
	var session domain.Session
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		return nil, err
	}
	return &session, nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
