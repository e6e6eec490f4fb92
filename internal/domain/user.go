package domain

import "time"

// User mirrors an account managed by the external identity provider.
// Rows are created and removed by provider webhooks only; the ID is the
// provider's opaque identifier.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"full_name" db:"full_name"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	RoleUser      = "USER"
	RoleModerator = "MODERATOR"
)

func (u *User) HasRole(role string) bool {
	if u.Role == RoleModerator {
		return true
	}
	return u.Role == role
}

// UserEvent is the identity provider's webhook payload for user
// lifecycle changes.
type UserEvent struct {
	Type string        `json:"type"`
	Data UserEventData `json:"data"`
}

type UserEventData struct {
	ID        string  `json:"id"`
	Email     string  `json:"email_address"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ImageURL  *string `json:"image_url,omitempty"`
}

const (
	UserEventCreated = "user.created"
	UserEventDeleted = "user.deleted"
)
