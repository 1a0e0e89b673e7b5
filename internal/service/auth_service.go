package service

import (
	"context"
	"errors"
	"time"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
	"github.com/njprem/fitcity-offers/internal/util"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
	ErrUserNotFound   = errors.New("user not found")
)

// AuthService resolves bearer tokens issued by the account service into
// users. It never creates sessions.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	jwt      *util.JWTManager
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwt *util.JWTManager) *AuthService {
	return &AuthService{users: users, sessions: sessions, jwt: jwt, now: time.Now}
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		if errors.Is(err, util.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrInvalidSession
	}

	session, err := s.sessions.FindActiveSession(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, ErrInvalidSession
	}
	if session.Expired(s.now()) {
		return nil, ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
