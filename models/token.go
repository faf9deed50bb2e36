package models

import "time"

// Token is a persisted record of an issued bearer token. A signed token that
// has no matching row here is treated as revoked.
type Token struct {
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}
