package models

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the account-creation request body.
type Registration struct {
	Name     string `json:"nombre" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthResponse is returned by login and register: the bearer token plus the
// server's view of the user at credential-exchange time.
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}
