package service

import (
	"github.com/google/uuid"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

// UserOwner adapts an authenticated user, or nil for anonymous callers.
type UserOwner struct {
	user *domain.User
}

func OwnerOf(user *domain.User) UserOwner {
	return UserOwner{user: user}
}

func (o UserOwner) CurrentOwnerID() *uuid.UUID {
	if o.user == nil || o.user.ID == uuid.Nil {
		return nil
	}
	id := o.user.ID
	return &id
}

func (o UserOwner) IsAuthenticated() bool {
	return o.CurrentOwnerID() != nil
}

var _ ports.OwnerContext = UserOwner{}
