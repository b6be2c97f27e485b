package topics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/auth"
)

// fakeService is an in-memory Service for handler tests. Temas listed in
// withPosts refuse deletion the way the SQL service does.
type fakeService struct {
	topics    map[int64]*Topic
	withPosts map[int64]bool
	deleted   []int64
}

func newFakeService(topics ...*Topic) *fakeService {
	s := &fakeService{topics: make(map[int64]*Topic), withPosts: make(map[int64]bool)}
	for _, topic := range topics {
		s.topics[topic.ID] = topic
	}
	return s
}

func (s *fakeService) Create(_ context.Context, req *CreateTopicRequest) (*Topic, error) {
	topic := &Topic{ID: int64(len(s.topics) + 1), Description: req.Description}
	s.topics[topic.ID] = topic
	return topic, nil
}

func (s *fakeService) List(context.Context, string) ([]Topic, error) {
	list := []Topic{}
	for _, topic := range s.topics {
		list = append(list, *topic)
	}
	return list, nil
}

func (s *fakeService) Get(_ context.Context, id int64) (*Topic, error) {
	topic, ok := s.topics[id]
	if !ok {
		return nil, apperror.NewNotFoundError("tema não encontrado", nil)
	}
	return topic, nil
}

func (s *fakeService) Update(ctx context.Context, id int64, req *CreateTopicRequest) (*Topic, error) {
	topic, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	topic.Description = req.Description
	return topic, nil
}

func (s *fakeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if s.withPosts[id] {
		return apperror.NewBadRequestError("não é possível deletar um tema com postagens associadas", nil)
	}
	delete(s.topics, id)
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
	h := NewTopicHandlers(service)
	r := chi.NewRouter()
	r.Route("/temas", func(r chi.Router) {
		h.RegisterPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(withPrincipal(principal))
			h.RegisterProtectedRoutes(r)
		})
	})
	return r
}

func TestTopicHandlers_DeleteRequiresAdmin(t *testing.T) {
	user := &auth.User{ID: 1, Username: "alice", Role: auth.RoleUser}
	service := newFakeService(&Topic{ID: 10, Description: "Tecnologia"})
	router := newTestRouter(service, user)

	req := httptest.NewRequest(http.MethodDelete, "/temas/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, service.deleted)
}

func TestTopicHandlers_AdminDeletes(t *testing.T) {
	admin := &auth.User{ID: 3, Username: "root", Role: auth.RoleAdmin}
	service := newFakeService(&Topic{ID: 10, Description: "Tecnologia"})
	router := newTestRouter(service, admin)

	req := httptest.NewRequest(http.MethodDelete, "/temas/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{10}, service.deleted)
}

func TestTopicHandlers_DeleteMissingNotFound(t *testing.T) {
	// A non-admin deleting an absent tema sees 404, not 403: the role gate
	// only runs once the tema is known to exist.
	user := &auth.User{ID: 1, Username: "alice", Role: auth.RoleUser}
	service := newFakeService()
	router := newTestRouter(service, user)

	req := httptest.NewRequest(http.MethodDelete, "/temas/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTopicHandlers_DeleteWithPostsRefused(t *testing.T) {
	admin := &auth.User{ID: 3, Username: "root", Role: auth.RoleAdmin}
	service := newFakeService(&Topic{ID: 10, Description: "Tecnologia"})
	service.withPosts[10] = true
	router := newTestRouter(service, admin)

	req := httptest.NewRequest(http.MethodDelete, "/temas/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.deleted)
}
