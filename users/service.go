// Package users, service layer. Business logic for account management;
// SQL stays localized here, mirroring the layout of the other feature
// packages.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/auth"
)

// UserService provides account management operations. Authorization is the
// caller's concern: handlers resolve the target, consult the policy engine
// and only then call the mutators here.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

const userColumns = `id, nome, username, email, senha, foto, role, creation_timestamp, update_timestamp`

func scanUser(row pgx.Row) (*auth.User, error) {
	var u auth.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.HashedPassword,
		&u.Photo, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM tb_users ORDER BY id`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	users := []UserResponse{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		users = append(users, NewUserResponse(u))
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	return users, nil
}

// Get fetches a user by id. Handlers call this before any authorization
// decision so an absent account reports 404, never 403.
func (s *UserService) Get(ctx context.Context, id int64) (*auth.User, error) {
	user, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM tb_users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("usuário não encontrado", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return user, nil
}

// Update applies a partial update to the user. A provided password is
// hashed before storage; nil fields are untouched.
func (s *UserService) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*auth.User, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Name != nil && *req.Name != "" {
		setClauses = append(setClauses, fmt.Sprintf("nome = $%d", argID))
		args = append(args, *req.Name)
		argID++
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperror.NewInternalError("failed to hash password", err)
		}
		setClauses = append(setClauses, fmt.Sprintf("senha = $%d", argID))
		args = append(args, hashed)
		argID++
	}
	if req.Photo != nil {
		setClauses = append(setClauses, fmt.Sprintf("foto = $%d", argID))
		args = append(args, *req.Photo)
		argID++
	}

	if len(setClauses) == 0 {
		return s.Get(ctx, id)
	}

	setClauses = append(setClauses, "update_timestamp = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE tb_users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(setClauses, ", "), argID)

	user, err := scanUser(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("usuário não encontrado", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update user", err)
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a hash of the new
// one. A wrong current password is a 400, not a 401: the caller is already
// authenticated, they just failed the confirmation step.
func (s *UserService) ChangePassword(ctx context.Context, id int64, req *ChangePasswordRequest) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(req.CurrentPassword, user.HashedPassword) {
		return apperror.NewBadRequestError("senha atual incorreta", nil)
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperror.NewInternalError("failed to hash password", err)
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE tb_users SET senha = $1, update_timestamp = now() WHERE id = $2`, hashed, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to change password", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("usuário não encontrado", nil)
	}
	return nil
}

// SetPhoto stores the avatar path on the user record.
func (s *UserService) SetPhoto(ctx context.Context, id int64, path string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tb_users SET foto = $1, update_timestamp = now() WHERE id = $2`, path, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to set photo", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("usuário não encontrado", nil)
	}
	return nil
}

// Delete removes the user account. Posts owned by the user go with it
// (ON DELETE CASCADE).
func (s *UserService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tb_users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("usuário não encontrado", nil)
	}
	return nil
}
