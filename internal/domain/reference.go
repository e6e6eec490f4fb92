package domain

import (
	"time"

	"github.com/google/uuid"
)

// OwnerType tags which kind of entity owns a service reference.
type OwnerType string

const (
	OwnerTypePost OwnerType = "POST"
)

func (t OwnerType) Valid() bool {
	switch t {
	case OwnerTypePost:
		return true
	}
	return false
}

// ServiceReference groups the media records attached to one owning
// entity. Its id equals the owner's id, so a post owns at most one
// reference. UpdatedAt is bumped every time another media item attaches.
type ServiceReference struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Type      OwnerType `json:"type" db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
