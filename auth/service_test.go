package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/config"
)

// fakeUserStore is an in-memory UserStore for tests. It mirrors the SQL
// store's contract: NotFound on misses, Conflict on duplicate username or
// email, ids assigned on create.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int64]*User)}
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NewNotFoundError("usuário não encontrado", nil)
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByLogin(_ context.Context, login string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == login || user.Email == strings.ToLower(login) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFoundError("usuário não encontrado", nil)
}

func (s *fakeUserStore) Create(_ context.Context, user *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, apperror.NewConflictError("username já cadastrado", nil)
		}
		if existing.Email == user.Email {
			return nil, apperror.NewConflictError("email já cadastrado", nil)
		}
	}
	copied := *user
	copied.ID = s.nextID
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	s.nextID++
	s.users[copied.ID] = &copied
	result := copied
	return &result, nil
}

func (s *fakeUserStore) delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret-key", TokenDuration: time.Hour}
}

func registerTestUser(t *testing.T, service *AuthService, username, email, password string) *User {
	t.Helper()
	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Usuário de Teste",
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	service := NewAuthService(newFakeUserStore(), testAuthConfig())

	user := registerTestUser(t, service, "joaosilva", "Joao@Email.com", "senha123")

	assert.NotZero(t, user.ID)
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, "joao@email.com", user.Email, "email stored lowercased")
	assert.NotEqual(t, "senha123", user.HashedPassword)
	assert.True(t, CheckPassword("senha123", user.HashedPassword))
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	service := NewAuthService(newFakeUserStore(), testAuthConfig())
	registerTestUser(t, service, "joaosilva", "joao@email.com", "senha123")

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Outro João",
		Username: "joaosilva",
		Email:    "outro@email.com",
		Password: "senha456",
	})
	assert.True(t, apperror.IsConflictError(err))

	_, err = service.Register(context.Background(), RegisterRequest{
		Name:     "Outro João",
		Username: "joaosilva2",
		Email:    "joao@email.com",
		Password: "senha456",
	})
	assert.True(t, apperror.IsConflictError(err))
}

func TestAuthService_Login(t *testing.T) {
	service := NewAuthService(newFakeUserStore(), testAuthConfig())
	user := registerTestUser(t, service, "joaosilva", "joao@email.com", "senha123")

	for _, login := range []string{"joaosilva", "joao@email.com"} {
		resp, err := service.Login(context.Background(), LoginRequest{Login: login, Password: "senha123"})
		require.NoError(t, err, "login by %q", login)

		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.Equal(t, "joaosilva", resp.User.Username)

		claims, err := service.Codec().Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "joaosilva", claims.Subject)
		assert.WithinDuration(t, resp.ExpiresAt, claims.ExpiresAt.Time, time.Second)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	service := NewAuthService(newFakeUserStore(), testAuthConfig())
	registerTestUser(t, service, "joaosilva", "joao@email.com", "senha123")

	_, unknownErr := service.Login(context.Background(), LoginRequest{Login: "naoexiste", Password: "senha123"})
	_, wrongErr := service.Login(context.Background(), LoginRequest{Login: "joaosilva", Password: "senhaerrada"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	// Both branches surface as 400 with one message: nothing to enumerate
	// accounts with, and 401 stays reserved for tokenless requests.
	for _, err := range []error{unknownErr, wrongErr} {
		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	}
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
