// Package users, handler layer. Maps HTTP requests onto the service,
// enforcing the authorization policy per operation: the target account is
// always resolved first (missing account -> 404) and only then is the
// policy engine consulted (denied -> 403), so existence never leaks
// through the status code.
package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/blogpessoal-go/apperror"
	"github.com/user/blogpessoal-go/auth"
	"github.com/user/blogpessoal-go/storage"
)

// maxAvatarBytes caps avatar uploads at 5 MiB.
const maxAvatarBytes = 5 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// Service is the surface the handlers need from the user service.
// Satisfied by *UserService; tests substitute an in-memory fake.
type Service interface {
	List(ctx context.Context) ([]UserResponse, error)
	Get(ctx context.Context, id int64) (*auth.User, error)
	Update(ctx context.Context, id int64, req *UpdateUserRequest) (*auth.User, error)
	ChangePassword(ctx context.Context, id int64, req *ChangePasswordRequest) error
	SetPhoto(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) error
}

// UserHandlers provides HTTP handlers for user account management.
type UserHandlers struct {
	service Service
	photos  *storage.Local
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service Service, photos *storage.Local) *UserHandlers {
	return &UserHandlers{service: service, photos: photos}
}

// RegisterRoutes mounts the user routes on the given router. The router is
// expected to already carry the RequireAuth middleware.
func (h *UserHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Get("/{usuarioId}", h.handleGet)
	r.Put("/{usuarioId}", h.handleUpdate)
	r.Delete("/{usuarioId}", h.handleDelete)
	r.Patch("/{usuarioId}/senha", h.handleChangePassword)
	r.Post("/{usuarioId}/foto", h.handleUploadPhoto)
}

// idParam extracts the numeric id from the route.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewBadRequestError("identificador inválido", err)
	}
	return id, nil
}

// principal pulls the authenticated user out of the request context.
func principal(r *http.Request) (*auth.User, error) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return nil, apperror.NewAuthError("não autenticado", nil)
	}
	return p, nil
}

// handleList godoc
// @Summary Listar usuários
// @Tags Usuários
// @Produce json
// @Security BearerAuth
// @Success 200 {array} users.UserResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Router /v1/usuarios [get]
func (h *UserHandlers) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, list)
}

// handleGet godoc
// @Summary Buscar usuário por ID
// @Tags Usuários
// @Produce json
// @Security BearerAuth
// @Param usuarioId path int true "ID do usuário"
// @Success 200 {object} users.UserResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /v1/usuarios/{usuarioId} [get]
func (h *UserHandlers) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "usuarioId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, NewUserResponse(user))
}

// handleUpdate godoc
// @Summary Atualizar usuário
// @Description Atualiza nome, senha e/ou foto. Permitido ao próprio usuário ou a um ADMIN.
// @Tags Usuários
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param usuarioId path int true "ID do usuário"
// @Param updateBody body users.UpdateUserRequest true "Campos a atualizar"
// @Success 204 "Atualizado"
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /v1/usuarios/{usuarioId} [put]
func (h *UserHandlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "usuarioId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, err := principal(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	// Resolve the target before the gate: 404 wins over 403.
	target, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, target.ID, auth.PolicyOwnerOrAdmin) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: você só pode editar sua própria conta", nil))
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
		return
	}
	defer r.Body.Close()
	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("dados de atualização inválidos", err))
		return
	}

	if _, err := h.service.Update(r.Context(), id, &req); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDelete godoc
// @Summary Excluir usuário
// @Description Permitido ao próprio usuário ou a um ADMIN.
// @Tags Usuários
// @Security BearerAuth
// @Param usuarioId path int true "ID do usuário"
// @Success 204 "Excluído"
// @Failure 403 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Router /v1/usuarios/{usuarioId} [delete]
func (h *UserHandlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "usuarioId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, err := principal(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	target, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, target.ID, auth.PolicyOwnerOrAdmin) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: você só pode excluir sua própria conta", nil))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleChangePassword godoc
// @Summary Alterar senha
// @Description Exige a senha atual. Permitido apenas ao próprio usuário.
// @Tags Usuários
// @Accept json
// @Security BearerAuth
// @Param usuarioId path int true "ID do usuário"
// @Param senhaBody body users.ChangePasswordRequest true "Senha atual e nova senha"
// @Success 204 "Senha alterada"
// @Failure 400 {object} apperror.ErrorResponse "Senha atual incorreta"
// @Failure 403 {object} apperror.ErrorResponse
// @Router /v1/usuarios/{usuarioId}/senha [patch]
func (h *UserHandlers) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "usuarioId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, err := principal(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	target, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, target.ID, auth.PolicyOwnerOnly) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: você só pode alterar sua própria senha", nil))
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
		return
	}
	defer r.Body.Close()
	if err := validate.Struct(req); err != nil {
		auth.WriteError(w, r, apperror.NewValidationError("senha atual e nova senha são obrigatórias", err))
		return
	}

	if err := h.service.ChangePassword(r.Context(), id, &req); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUploadPhoto godoc
// @Summary Enviar foto de perfil
// @Description Upload multipart (campo "foto"). Permitido apenas ao próprio usuário.
// @Tags Usuários
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param usuarioId path int true "ID do usuário"
// @Param foto formData file true "Arquivo de imagem"
// @Success 200 {object} users.PhotoResponse
// @Failure 403 {object} apperror.ErrorResponse
// @Router /v1/usuarios/{usuarioId}/foto [post]
func (h *UserHandlers) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "usuarioId")
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	caller, err := principal(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	target, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if !auth.Allow(caller, target.ID, auth.PolicyOwnerOnly) {
		auth.WriteError(w, r, apperror.NewUnauthorizedError("acesso negado: você só pode alterar sua própria foto", nil))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	file, header, err := r.FormFile("foto")
	if err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("arquivo de foto ausente ou inválido", err))
		return
	}
	defer file.Close()

	path, err := h.photos.Save(file, header.Filename)
	if err != nil {
		auth.WriteError(w, r, apperror.NewInternalError("falha ao salvar arquivo", err))
		return
	}

	if err := h.service.SetPhoto(r.Context(), id, path); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, PhotoResponse{Photo: path})
}
