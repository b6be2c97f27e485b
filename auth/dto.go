package auth

import "time"

// RegisterRequest represents the registration request payload.
// Field names follow the public API contract (Portuguese keys on the wire).
type RegisterRequest struct {
	Name     string `json:"nome" validate:"required,min=2,max=100" example:"João Silva"`
	Username string `json:"username" validate:"required,min=4,max=50" example:"joaosilva"`
	Email    string `json:"email" validate:"required,email" example:"joao@email.com"`
	Password string `json:"senha" validate:"required,min=6" example:"senha123"`
}

// LoginRequest represents the login request payload. Login accepts either
// the username or the email address.
type LoginRequest struct {
	Login    string `json:"login" validate:"required" example:"joaosilva"`
	Password string `json:"senha" validate:"required" example:"senha123"`
}

// UserResponse is the public view of a user, embedded in login responses.
// The password hash never appears here.
type UserResponse struct {
	ID       int64   `json:"id" example:"1"`
	Name     string  `json:"nome" example:"João Silva"`
	Username string  `json:"username" example:"joaosilva"`
	Email    string  `json:"email" example:"joao@email.com"`
	Photo    *string `json:"foto,omitempty" example:"uploads/fotos/3f1e.jpg"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType string       `json:"tipo" example:"Bearer"`
	ExpiresAt time.Time    `json:"expiraEm"`
	User      UserResponse `json:"usuario"`
}

// NewUserResponse maps a User to its public view.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Photo:    u.Photo,
	}
}
