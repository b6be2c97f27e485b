package auth

import (
	"context"
	"strings"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/config"
)

// AuthService orchestrates credential lookup, password verification and
// token issuance. It holds no request state; the store and codec it wraps
// are both safe for concurrent use.
type AuthService struct {
	store UserStore
	codec *TokenCodec
}

// NewAuthService creates a new AuthService over the given credential store
// and auth configuration.
func NewAuthService(store UserStore, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		store: store,
		codec: NewTokenCodec(authConfig.JWTSecret, authConfig.TokenDuration),
	}
}

// Codec exposes the token codec so the identity-resolver middleware can
// share the same signing key and TTL.
func (s *AuthService) Codec() *TokenCodec {
	return s.codec
}

// Register creates a new user with the default USER role.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           req.Name,
		Username:       req.Username,
		Email:          strings.ToLower(req.Email),
		HashedPassword: hashed,
		Role:           RoleUser,
	}

	return s.store.Create(ctx, user)
}

// Login authenticates a user by login handle (username or email) and
// password, issuing a bearer token on success.
//
// The unknown-handle and wrong-password branches return the identical
// error; a caller probing for registered accounts learns nothing from the
// response. Bad credentials are a 400: 401 is reserved for requests that
// present no valid token at all.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	invalidCredentials := func() *apperror.AppError {
		return apperror.NewBadRequestError("credenciais inválidas", nil)
	}

	user, err := s.store.GetByLogin(ctx, req.Login)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, invalidCredentials()
	}

	token, expiresAt, err := s.codec.Issue(user.Username, user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      NewUserResponse(user),
	}, nil
}
