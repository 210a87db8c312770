package model

import "time"

const (
	TableName  = "sessions"
	EntityName = "session"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldToken     = "token"
	FieldExpiresAt = "expires_at"
	FieldCreatedAt = "created_at"
)

type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
