package model

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is the data object returned by register and login.
type AuthPayload struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UserPayload is the data object returned by /auth/me.
type UserPayload struct {
	User *User `json:"user"`
}
