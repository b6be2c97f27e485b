package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/user/blogpessoal-go/apperror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary Registrar novo usuário
// @Description Registra um novo usuário no sistema com o papel USER.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Dados de registro"
// @Success 201 {object} auth.UserResponse "Usuário criado"
// @Failure 400 {object} apperror.ErrorResponse "Dados inválidos"
// @Failure 409 {object} apperror.ErrorResponse "Username ou email já cadastrado"
// @Failure 500 {object} apperror.ErrorResponse "Erro interno"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			WriteError(w, r, apperror.NewValidationError("nome, username, email e senha são obrigatórios", err))
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/v1/usuarios/%d", user.ID))
		WriteJSON(w, http.StatusCreated, NewUserResponse(user))
	}
}

// HandleLogin godoc
// @Summary Realizar login
// @Description Autentica pelo username ou email e devolve um token Bearer.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Credenciais de login"
// @Success 200 {object} auth.LoginResponse "Login realizado com sucesso"
// @Failure 400 {object} apperror.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} apperror.ErrorResponse "Erro interno"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("corpo da requisição inválido", err))
			return
		}
		defer r.Body.Close()

		if err := validate.Struct(req); err != nil {
			WriteError(w, r, apperror.NewValidationError("login e senha são obrigatórios", err))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// WriteJSON serializes data to JSON and writes it with the given status.
// A nil payload writes only the status, avoiding a literal "null" body.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into a standardized apperror response.
// Errors that are not already *AppError are wrapped as internal errors, so
// every failure leaving the API has the same JSON shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("ocorreu um erro inesperado", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
