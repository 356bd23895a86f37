package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/repository/memory"
	"github.com/rohitkr5850/storefront/internal/storage"
	"github.com/rohitkr5850/storefront/internal/usecase/auth"
)

func setupAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	log := logger.New("test")
	service := auth.NewService(context.Background(), memory.NewUserRepository(), storage.NewMemoryStore(), "test:user", log)
	return NewAuthHandler(service, log)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := setupAuthHandler(t)

	body, _ := json.Marshal(LoginRequest{Email: "alex@example.com", Password: "anything"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data domain.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alex@example.com", resp.Data.Email)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	h := setupAuthHandler(t)

	body, _ := json.Marshal(LoginRequest{Email: "nobody@example.com", Password: "pw"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_Register_DefaultsRole(t *testing.T) {
	h := setupAuthHandler(t)

	body, _ := json.Marshal(RegisterRequest{Name: "New Shopper", Email: "new@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data domain.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.RoleUser, resp.Data.Role)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := setupAuthHandler(t)

	body, _ := json.Marshal(RegisterRequest{Name: "Impostor", Email: "alex@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Me_NotSignedIn(t *testing.T) {
	h := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()

	h.Me(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LogoutThenMe(t *testing.T) {
	h := setupAuthHandler(t)

	body, _ := json.Marshal(LoginRequest{Email: "alex@example.com", Password: "pw"})
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	loginW := httptest.NewRecorder()
	h.Login(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	logoutW := httptest.NewRecorder()
	h.Logout(logoutW, logoutReq)
	assert.Equal(t, http.StatusNoContent, logoutW.Code)

	meReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	meW := httptest.NewRecorder()
	h.Me(meW, meReq)
	assert.Equal(t, http.StatusUnauthorized, meW.Code)
}
