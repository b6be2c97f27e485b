// Package topics, handler layer.
package topics

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

// Service is the surface the handlers need from the tema service.
// Satisfied by *TopicService; tests substitute an in-memory fake.
type Service interface {
	Create(ctx context.Context, req *CreateTopicRequest) (*Topic, error)
	List(ctx context.Context, description string) ([]Topic, error)
	Get(ctx context.Context, id int64) (*Topic, error)
	Update(ctx context.Context, id int64, req *CreateTopicRequest) (*Topic, error)
	Delete(ctx context.Context, id int64) error
}

// TopicHandlers provides HTTP handlers for temas.
type TopicHandlers struct {
	service Service
}

// NewTopicHandlers creates new TopicHandlers.
func NewTopicHandlers(service Service) *TopicHandlers {
	return &TopicHandlers{service: service}
}

// RegisterPublicRoutes mounts the read-only tema routes, served without
// authentication.
func (h *TopicHandlers) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/{temaId}", h.handleGet)
}

// RegisterProtectedRoutes mounts the mutating tema routes on a router that
// already carries RequireAuth.
func (h *TopicHandlers) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Put("/{temaId}", h.handleUpdate)
	r.Delete("/{temaId}", h.handleDelete)
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("identificador inválido", err)
	}
	return id, nil
}

// handleCreate godoc
// @Summary Criar um novo tema
// @Tags Temas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param temaBody body topics.CreateTopicRequest true "Dados do tema"
// @Success 201 {object} topics.Topic
// @Failure 400 {object} apperror.ErrorResponse
// @Router /temas [post]
func (h *TopicHandlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
		return
	}
	defer r.Body.Close()
	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("a descrição do tema não pode estar vazia", err))
		return
	}

	topic, err := h.service.Create(r.Context(), &req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusCreated, topic)
}

// handleList godoc
// @Summary Listar temas ou buscar por descrição parcial
// @Tags Temas
// @Produce json
// @Param descricao query string false "Descrição parcial"
// @Success 200 {array} topics.Topic
// @Router /temas [get]
func (h *TopicHandlers) handleList(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.List(r.Context(), r.URL.Query().Get("descricao"))
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, topics)
}

// handleGet godoc
// @Summary Buscar um tema por ID
// @Tags Temas
// @Produce json
// @Param temaId path int true "ID do tema"
// @Success 200 {object} topics.Topic
// @Failure 404 {object} apperror.ErrorResponse
// @Router /temas/{temaId} [get]
func (h *TopicHandlers) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "temaId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	topic, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, topic)
}

// handleUpdate godoc
// @Summary Atualizar um tema por ID
// @Tags Temas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param temaId path int true "ID do tema"
// @Param temaBody body topics.CreateTopicRequest true "Nova descrição"
// @Success 200 {object} topics.Topic
// @Failure 404 {object} apperror.ErrorResponse
// @Router /temas/{temaId} [put]
func (h *TopicHandlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "temaId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
		return
	}
	defer r.Body.Close()
	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("a descrição do tema não pode estar vazia", err))
		return
	}

	topic, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, topic)
}

// handleDelete godoc
// @Summary Deletar um tema por ID
// @Description Restrito a ADMIN. Temas com postagens associadas não podem ser deletados.
// @Tags Temas
// @Security BearerAuth
// @Param temaId path int true "ID do tema"
// @Success 204 "Tema deletado"
// @Failure 400 {object} apperror.ErrorResponse "Tema com postagens associadas"
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /temas/{temaId} [delete]
func (h *TopicHandlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "temaId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("não autenticado", nil))
		return
	}

	// Resolve before the role gate: an absent tema reports 404 for
	// admins and non-admins alike.
	if _, err := h.service.Get(r.Context(), id); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, 0, auth.PolicyAdminOnly) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: apenas administradores podem deletar temas", nil))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
