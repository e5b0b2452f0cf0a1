package models

// Role is the authorization role of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the profile of an authenticated user.
type User struct {
	ID    uint64 `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Registration is the payload for creating a new user.
type Registration struct {
	Name     string `json:"nome" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=1"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN"`
}

// Credentials is the payload for logging in.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse is returned by the upstream on successful login or
// registration.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tipo"`
	User      User   `json:"usuario"`
}
