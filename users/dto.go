// Package users encapsulates user profile management: listing, fetching,
// updating and deleting accounts, password changes and avatar uploads.
// This file defines the DTOs exchanged with API clients.
package users

import (
	"time"

	"github.com/user/blogpessoal-go/auth"
)

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"nome" example:"João Silva"`
	Username  string    `json:"username" example:"joaosilva"`
	Email     string    `json:"email" example:"joao@email.com"`
	Photo     *string   `json:"foto,omitempty" example:"uploads/fotos/3f1e.jpg"`
	Role      auth.Role `json:"role" example:"USER"`
	CreatedAt time.Time `json:"creationTimestamp"`
	UpdatedAt time.Time `json:"updateTimestamp"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(u *auth.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Photo:     u.Photo,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UpdateUserRequest carries a partial account update. Nil fields are left
// untouched; a provided senha is re-hashed before storage.
type UpdateUserRequest struct {
	Name     *string `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	Password *string `json:"senha,omitempty" validate:"omitempty,min=6"`
	Photo    *string `json:"foto,omitempty"`
}

// ChangePasswordRequest carries a password change with proof of the current one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"senhaAtual" validate:"required"`
	NewPassword     string `json:"novaSenha" validate:"required,min=6"`
}

// PhotoResponse is returned after a successful avatar upload.
type PhotoResponse struct {
	Photo string `json:"foto" example:"uploads/fotos/3f1e.jpg"`
}
