package domain

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Bookmark struct {
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
