package domain

import "time"

// DeviceToken is a push-messaging registration token. Delivery is
// handled by an external messaging provider; this backend only stores
// tokens and hands them to the notification sender.
type DeviceToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    *string   `json:"user_id,omitempty" db:"user_id"`
	Platform  string    `json:"platform" db:"platform"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type RegisterTokenInput struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=web android ios"`
}
