package model

import "time"

// User is the persisted account row. The password hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthUser is the identity bound into the request context by the auth middleware.
type AuthUser struct {
	ID    int64
	Email string
}
