// Package posts, handler layer. Reads are public; mutations resolve the
// post first (absent -> 404) and then consult the policy engine
// (denied -> 403), in that order on every path.
package posts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/auth"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service is the surface the handlers need from the postagem service.
// Satisfied by *PostService; tests substitute an in-memory fake.
type Service interface {
	Create(ctx context.Context, req *CreatePostRequest) (*PostResponse, error)
	List(ctx context.Context, title string, page, size int64) (*Page, error)
	ListByTopic(ctx context.Context, topicID, page, size int64) (*Page, error)
	ListByUser(ctx context.Context, userID, page, size int64) (*Page, error)
	Get(ctx context.Context, id int64) (*PostResponse, error)
	Update(ctx context.Context, id int64, req *UpdatePostRequest) (*PostResponse, error)
	Delete(ctx context.Context, id int64) error
}

// PostHandlers provides HTTP handlers for postagens.
type PostHandlers struct {
	service Service
}

// NewPostHandlers creates new PostHandlers.
func NewPostHandlers(service Service) *PostHandlers {
	return &PostHandlers{service: service}
}

// RegisterPublicRoutes mounts the read-only postagem routes, served without
// authentication.
func (h *PostHandlers) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/{postagemId}", h.handleGet)
	r.Get("/tema/{temaId}", h.handleListByTopic)
	r.Get("/usuario/{usuarioId}", h.handleListByUser)
}

// RegisterProtectedRoutes mounts the mutating postagem routes on a router
// that already carries RequireAuth.
func (h *PostHandlers) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Put("/{postagemId}", h.handleUpdate)
	r.Delete("/{postagemId}", h.handleDelete)
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("identificador inválido", err)
	}
	return id, nil
}

// pageParams reads page/size query parameters with sane bounds.
func pageParams(r *http.Request) (page, size int64) {
	page, size = 0, 10
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64); err == nil && v > 0 && v <= 100 {
		size = v
	}
	return page, size
}

// handleCreate godoc
// @Summary Criar uma nova postagem
// @Description O usuarioId do corpo deve ser o do próprio autor autenticado.
// @Tags Postagens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postagemBody body posts.CreatePostRequest true "Dados da postagem"
// @Success 201 {object} posts.PostResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse "Tema inexistente"
// @Router /postagens [post]
func (h *PostHandlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("não autenticado", nil))
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
		return
	}
	defer r.Body.Close()
	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("titulo, texto, temaId e usuarioId são obrigatórios", err))
		return
	}

	// Authorship is owner-only: even an admin does not publish under
	// another user's id.
	if !auth.Allow(caller, req.UserID, auth.PolicyOwnerOnly) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("você só pode criar postagens com seu próprio ID", nil))
		return
	}

	post, err := h.service.Create(r.Context(), &req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, post)
}

// handleList godoc
// @Summary Listar postagens ou buscar por título
// @Tags Postagens
// @Produce json
// @Param titulo query string false "Título parcial"
// @Param page query int false "Página (0-based)"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} posts.Page
// @Router /postagens [get]
func (h *PostHandlers) handleList(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	result, err := h.service.List(r.Context(), r.URL.Query().Get("titulo"), page, size)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, result)
}

// handleGet godoc
// @Summary Buscar uma postagem por ID
// @Tags Postagens
// @Produce json
// @Param postagemId path int true "ID da postagem"
// @Success 200 {object} posts.PostResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /postagens/{postagemId} [get]
func (h *PostHandlers) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postagemId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, post)
}

// handleUpdate godoc
// @Summary Atualizar uma postagem por ID
// @Description Permitido ao autor da postagem ou a um ADMIN.
// @Tags Postagens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postagemId path int true "ID da postagem"
// @Param postagemBody body posts.UpdatePostRequest true "Campos a atualizar"
// @Success 200 {object} posts.PostResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /postagens/{postagemId} [put]
func (h *PostHandlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postagemId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("não autenticado", nil))
		return
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, post.Author.ID, auth.PolicyOwnerOrAdmin) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: você só pode editar suas próprias postagens", nil))
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
		return
	}
	defer r.Body.Close()
	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("titulo e texto são obrigatórios", err))
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, updated)
}

// handleDelete godoc
// @Summary Deletar uma postagem por ID
// @Description Permitido ao autor da postagem ou a um ADMIN.
// @Tags Postagens
// @Security BearerAuth
// @Param postagemId path int true "ID da postagem"
// @Success 204 "Postagem excluída"
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /postagens/{postagemId} [delete]
func (h *PostHandlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postagemId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("não autenticado", nil))
		return
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, post.Author.ID, auth.PolicyOwnerOrAdmin) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: você só pode excluir suas próprias postagens", nil))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListByTopic godoc
// @Summary Buscar postagens por ID do tema
// @Tags Postagens
// @Produce json
// @Param temaId path int true "ID do tema"
// @Param page query int false "Página (0-based)"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} posts.Page
// @Router /postagens/tema/{temaId} [get]
func (h *PostHandlers) handleListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := idParam(r, "temaId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	page, size := pageParams(r)
	result, err := h.service.ListByTopic(r.Context(), topicID, page, size)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, result)
}

// handleListByUser godoc
// @Summary Buscar postagens por ID do usuário
// @Tags Postagens
// @Produce json
// @Param usuarioId path int true "ID do usuário"
// @Param page query int false "Página (0-based)"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} posts.Page
// @Router /postagens/usuario/{usuarioId} [get]
func (h *PostHandlers) handleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "usuarioId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	page, size := pageParams(r)
	result, err := h.service.ListByUser(r.Context(), userID, page, size)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, result)
}
