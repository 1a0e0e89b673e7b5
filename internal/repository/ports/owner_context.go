package ports

import "github.com/google/uuid"

// OwnerContext exposes who, if anyone, is acting.
type OwnerContext interface {
	CurrentOwnerID() *uuid.UUID
	IsAuthenticated() bool
}
