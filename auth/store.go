package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/blogpessoal-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// UserStore is the credential store the auth core depends on. It is the only
// collaborator with external mutable state; everything else in this package
// is pure computation over its results. Tests substitute fakes.
type UserStore interface {
	// GetByID fetches a user by stable id.
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByLogin fetches a user by login handle, matching either username
	// or email (emails compared lowercase).
	GetByLogin(ctx context.Context, login string) (*User, error)
	// Create inserts a new user and fills in its generated id and timestamps.
	Create(ctx context.Context, user *User) (*User, error)
}

// SQLUserStore is the pgx-backed UserStore used in production.
type SQLUserStore struct {
	db *pgxpool.Pool
}

// NewSQLUserStore creates a SQLUserStore on the given pool.
func NewSQLUserStore(db *pgxpool.Pool) *SQLUserStore {
	return &SQLUserStore{db: db}
}

const userColumns = `id, nome, username, email, senha, foto, role, creation_timestamp, update_timestamp`

func scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Photo,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID fetches a user by id. A missing row yields a NotFoundError.
func (s *SQLUserStore) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_users WHERE id = $1`
	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("usuário não encontrado", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by id", err)
	}
	return user, nil
}

// GetByLogin fetches a user by username or email.
func (s *SQLUserStore) GetByLogin(ctx context.Context, login string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM tb_users WHERE username = $1 OR email = $2`
	user, err := scanUser(s.db.QueryRow(ctx, query, login, strings.ToLower(login)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("usuário não encontrado", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by login", err)
	}
	return user, nil
}

// Create inserts a new user. Duplicate username or email surfaces as a
// ConflictError naming the offending field.
func (s *SQLUserStore) Create(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO tb_users (nome, username, email, senha, role)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, creation_timestamp, update_timestamp`
	err := s.db.QueryRow(ctx, query,
		user.Name, user.Username, user.Email, user.HashedPassword, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return nil, apperror.NewConflictError("username já cadastrado", nil)
			}
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, apperror.NewConflictError("email já cadastrado", nil)
			}
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}
