package posts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/auth"
)

// fakeService is an in-memory Service for handler tests.
type fakeService struct {
	posts   map[int64]*PostResponse
	nextID  int64
	deleted []int64
	updated []int64
}

func newFakeService(posts ...*PostResponse) *fakeService {
	s := &fakeService{posts: make(map[int64]*PostResponse), nextID: 100}
	for _, p := range posts {
		s.posts[p.ID] = p
	}
	return s
}

func (s *fakeService) Create(_ context.Context, req *CreatePostRequest) (*PostResponse, error) {
	p := &PostResponse{
		ID:     s.nextID,
		Title:  req.Title,
		Text:   req.Text,
		Topic:  TopicRef{ID: req.TopicID},
		Author: AuthorRef{ID: req.UserID},
	}
	s.nextID++
	s.posts[p.ID] = p
	return p, nil
}

func (s *fakeService) List(context.Context, string, int64, int64) (*Page, error) {
	content := []PostResponse{}
	for _, p := range s.posts {
		content = append(content, *p)
	}
	return &Page{Content: content, Size: 10, TotalElements: int64(len(content))}, nil
}

func (s *fakeService) ListByTopic(ctx context.Context, _ int64, page, size int64) (*Page, error) {
	return s.List(ctx, "", page, size)
}

func (s *fakeService) ListByUser(ctx context.Context, _ int64, page, size int64) (*Page, error) {
	return s.List(ctx, "", page, size)
}

func (s *fakeService) Get(_ context.Context, id int64) (*PostResponse, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, apperror.NewNotFoundError("postagem não encontrada", nil)
	}
	return p, nil
}

func (s *fakeService) Update(ctx context.Context, id int64, req *UpdatePostRequest) (*PostResponse, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Title = req.Title
	p.Text = req.Text
	s.updated = append(s.updated, id)
	return p, nil
}

func (s *fakeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	delete(s.posts, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func withPrincipal(p *auth.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.NewContextWithPrincipal(r.Context(), p)))
		})
	}
}

func newTestRouter(service Service, principal *auth.User) http.Handler {
	h := NewPostHandlers(service)
	r := chi.NewRouter()
	r.Route("/postagens", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(withPrincipal(principal))
			h.RegisterProtectedRoutes(r)
		})
	})
	return r
}

func alicePost() *PostResponse {
	return &PostResponse{
		ID:     10,
		Title:  "Minha postagem",
		Text:   "conteúdo",
		Topic:  TopicRef{ID: 1, Description: "Tecnologia"},
		Author: AuthorRef{ID: 1, Username: "alice"},
	}
}

func TestPostHandlers_CreateAsSelf(t *testing.T) {
	alice := &auth.User{ID: 1, Username: "alice", Role: auth.RoleUser}
	service := newFakeService()
	router := newTestRouter(service, alice)

	body := strings.NewReader(`{"titulo":"Nova","texto":"corpo","temaId":1,"usuarioId":1}`)
	req := httptest.NewRequest(http.MethodPost, "/postagens", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, service.posts, 1)
}

func TestPostHandlers_CreateImpersonationForbidden(t *testing.T) {
	// Nobody publishes under another author's id, admins included.
	for _, caller := range []*auth.User{
		{ID: 1, Username: "alice", Role: auth.RoleUser},
		{ID: 3, Username: "root", Role: auth.RoleAdmin},
	} {
		service := newFakeService()
		router := newTestRouter(service, caller)

		body := strings.NewReader(`{"titulo":"Nova","texto":"corpo","temaId":1,"usuarioId":2}`)
		req := httptest.NewRequest(http.MethodPost, "/postagens", body)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, "caller %s", caller.Username)
		assert.Empty(t, service.posts)
	}
}

func TestPostHandlers_UpdateGate(t *testing.T) {
	bob := &auth.User{ID: 2, Username: "bob", Role: auth.RoleUser}
	admin := &auth.User{ID: 3, Username: "root", Role: auth.RoleAdmin}
	body := `{"titulo":"Editada","texto":"novo corpo"}`

	// A non-author regular user is refused before the service runs.
	service := newFakeService(alicePost())
	router := newTestRouter(service, bob)
	req := httptest.NewRequest(http.MethodPut, "/postagens/10", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, service.updated)

	// An admin edits anyone's post.
	service = newFakeService(alicePost())
	router = newTestRouter(service, admin)
	req = httptest.NewRequest(http.MethodPut, "/postagens/10", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{10}, service.updated)
}

func TestPostHandlers_DeleteOwn(t *testing.T) {
	alice := &auth.User{ID: 1, Username: "alice", Role: auth.RoleUser}
	service := newFakeService(alicePost())
	router := newTestRouter(service, alice)

	req := httptest.NewRequest(http.MethodDelete, "/postagens/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{10}, service.deleted)
}

func TestPostHandlers_DeleteMissingNotFound(t *testing.T) {
	// 404 wins over 403: a caller who would be refused anyway cannot tell
	// an absent post from someone else's.
	bob := &auth.User{ID: 2, Username: "bob", Role: auth.RoleUser}
	service := newFakeService()
	router := newTestRouter(service, bob)

	req := httptest.NewRequest(http.MethodDelete, "/postagens/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
