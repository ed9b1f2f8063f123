package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/internal/middleware"
	"shgportal/internal/service"
	"shgportal/mocks"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	out := &service.LoginOutput{
		Tokens:    service.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		User:      &domain.User{ID: uuid.New(), Email: "nic@shg.in", Role: domain.RoleNIC},
		HomeRoute: "/nic",
	}
	mockAuth.On("Login", mock.Anything, service.LoginInput{Email: "nic@shg.in", Password: "password123"}).Return(out, nil)

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "nic@shg.in", "password": "password123"})
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			HomeRoute string `json:"home_route"`
			Tokens    struct {
				AccessToken string `json:"access_token"`
			} `json:"tokens"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/nic", resp.Data.HomeRoute)
	assert.Equal(t, "access", resp.Data.Tokens.AccessToken)
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "not-an-email"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "nic@shg.in", "password": "wrongpass1"})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, w).Error.Code)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("RefreshToken", mock.Anything, "refresh").Return(&service.TokenPair{AccessToken: "new-access"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": "refresh"})
	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Me(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	userID := uuid.New()
	c, w := newContext(http.MethodGet, "/api/v1/auth/me", nil)
	c.Set(middleware.ContextKeyClaims, &service.Claims{
		UserID: userID, Email: "bmmu@shg.in", Role: domain.RoleBMMU, District: "DHALAI", Block: "Ambassa",
	})
	h.Me(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data handler.SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.Data.UserID)
	assert.Equal(t, "/bmmu", resp.Data.HomeRoute)
	assert.Equal(t, "Ambassa", resp.Data.Block)
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	c, w := newContext(http.MethodGet, "/api/v1/auth/me", nil)
	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
