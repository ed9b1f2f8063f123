package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shgportal/internal/domain"
	"shgportal/internal/handler"
	"shgportal/internal/service"
	"shgportal/mocks"
)

func newUserHandler() (*handler.UserHandler, *mocks.MockUserService) {
	mockSvc := new(mocks.MockUserService)
	return handler.NewUserHandler(mockSvc), mockSvc
}

func TestUserHandler_Create_Success(t *testing.T) {
	h, mockSvc := newUserHandler()

	input := service.CreateUserInput{
		Email: "dhalai@shg.in", Password: "password123", FullName: "Dhalai DMMU",
		Role: domain.RoleDMMU, District: "DHALAI",
	}
	mockSvc.On("Create", mock.Anything, input).
		Return(&domain.User{ID: uuid.New(), Email: input.Email, Role: domain.RoleDMMU, District: "DHALAI"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/users", input)
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_Create_InvalidJurisdiction(t *testing.T) {
	h, mockSvc := newUserHandler()

	mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidJurisdiction)

	c, w := newContext(http.MethodPost, "/api/v1/users", service.CreateUserInput{
		Email: "bmmu@shg.in", Password: "password123", FullName: "No Block", Role: domain.RoleBMMU, District: "DHALAI",
	})
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JURISDICTION", decode(t, w).Error.Code)
}

func TestUserHandler_List(t *testing.T) {
	h, mockSvc := newUserHandler()

	users := []domain.User{{ID: uuid.New()}, {ID: uuid.New()}}
	mockSvc.On("List", mock.Anything, 0, 20).Return(users, 2, nil)

	c, w := newContext(http.MethodGet, "/api/v1/users", nil)
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 2, resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Limit)
}

func TestUserHandler_GetByID_OtherUserForbidden(t *testing.T) {
	h, mockSvc := newUserHandler()

	c, w := newContext(http.MethodGet, "/api/v1/users/x", nil)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	setAuthContext(c, uuid.New(), domain.RoleDMMU, "DHALAI", "")
	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUserHandler_GetByID_Self(t *testing.T) {
	h, mockSvc := newUserHandler()

	userID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}
	setAuthContext(c, userID, domain.RoleBMMU, "DHALAI", "Ambassa")
	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newUserHandler()

	c, w := newContext(http.MethodGet, "/api/v1/users/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode(t, w).Error.Code)
}

func TestUserHandler_Delete_Self(t *testing.T) {
	h, mockSvc := newUserHandler()

	userID := uuid.New()
	c, w := newContext(http.MethodDelete, "/api/v1/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}
	setAuthContext(c, userID, domain.RoleNIC, "", "")
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SELF_DELETION", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	h, mockSvc := newUserHandler()

	target := uuid.New()
	mockSvc.On("Delete", mock.Anything, target).Return(domain.ErrNotFound)

	c, w := newContext(http.MethodDelete, "/api/v1/users/"+target.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: target.String()}}
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
