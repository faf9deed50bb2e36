package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is what gets embedded in responses; never carries the hash.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
