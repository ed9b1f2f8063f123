package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/mocks"
)

func TestDashboardHandler_Stats(t *testing.T) {
	mockSvc := new(mocks.MockDashboardService)
	h := handler.NewDashboardHandler(mockSvc)

	userID := uuid.New()
	actor := actorFor(userID, domain.RoleDMMU, "DHALAI", "")
	mockSvc.On("Stats", mock.Anything, actor).Return(&domain.DashboardStats{
		Role: domain.RoleDMMU, Scope: actor.Scope, Blocks: 2, SHGs: 5, Members: 10, TotalSavings: 46900,
	}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/dashboard", nil)
	setAuthContext(c, userID, domain.RoleDMMU, "DHALAI", "")
	h.Stats(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data domain.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Data.SHGs)
	assert.Equal(t, "DHALAI", resp.Data.Scope.District)
	mockSvc.AssertExpectations(t)
}

func TestDashboardHandler_Stats_RepoFailure(t *testing.T) {
	mockSvc := new(mocks.MockDashboardService)
	h := handler.NewDashboardHandler(mockSvc)

	mockSvc.On("Stats", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	c, w := newContext(http.MethodGet, "/api/v1/dashboard", nil)
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
}
