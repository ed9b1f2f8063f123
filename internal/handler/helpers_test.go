package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/internal/middleware"
	"shgportal/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, userID uuid.UUID, role domain.UserRole, district, block string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyEmail, string(role)+"@shg.in")
	c.Set(middleware.ContextKeyRole, string(role))
	c.Set(middleware.ContextKeyDistrict, district)
	c.Set(middleware.ContextKeyBlock, block)
}

func actorFor(userID uuid.UUID, role domain.UserRole, district, block string) service.Actor {
	return service.Actor{
		UserID: userID,
		Email:  string(role) + "@shg.in",
		Role:   role,
		Scope:  domain.Jurisdiction{District: district, Block: block},
	}
}

func newContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request, _ = http.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
