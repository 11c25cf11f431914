package models

// RoleAdmin is the only role issued today. Kept as a constant so the
// claim shows up consistently in stored users and session tokens.
const RoleAdmin = "admin"

// User is an admin account stored in the overlay. Emails are unique
// case-insensitively. Password hashes live under a separate key, keyed
// by user ID.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// RegisterInput is the payload for creating an admin account.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginInput is the payload for signing in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
