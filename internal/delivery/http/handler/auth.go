package handler

import (
	"errors"
	"net/http"

	"github.com/rohitkr5850/storefront/internal/delivery/http/request"
	"github.com/rohitkr5850/storefront/internal/delivery/http/response"
	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/usecase/auth"
)

// AuthHandler handles HTTP requests for the mock sign-in flow
type AuthHandler struct {
	service *auth.Service
	logger  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login handles POST /api/v1/auth/login
// @Summary Sign in
// @Description Sign in by email. The password is accepted but not verified; this is a mock flow.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} map[string]interface{} "Signed-in user"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Unknown email"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, user)
}

// Register handles POST /api/v1/auth/register
// @Summary Create an account
// @Description Create an account and sign it in. Role defaults to user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Account details"
// @Success 201 {object} map[string]interface{} "Created user"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleUser
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Email, role)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, user)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Sign out
// @Tags Auth
// @Accept json
// @Produce json
// @Success 204 "Signed out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
// @Summary Get the signed-in user
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Signed-in user"
// @Failure 401 {object} map[string]string "Not signed in"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.service.Current()
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	response.Success(w, user)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *AuthHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "No account with that email")
	case errors.Is(err, domain.ErrAlreadyExists):
		response.Error(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in auth handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
