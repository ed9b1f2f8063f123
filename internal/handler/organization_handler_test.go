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

func newOrganizationHandler() (*handler.OrganizationHandler, *mocks.MockOrganizationService) {
	mockSvc := new(mocks.MockOrganizationService)
	return handler.NewOrganizationHandler(mockSvc), mockSvc
}

func TestOrganizationHandler_Create_PassesActor(t *testing.T) {
	h, mockSvc := newOrganizationHandler()

	userID := uuid.New()
	actor := actorFor(userID, domain.RoleBMMU, "DHALAI", "Ambassa")
	input := service.CreateOrganizationInput{
		Name: "Jagaran SHG", Type: domain.OrgTypeSHG, District: "DHALAI", Block: "Ambassa", RegistrationNo: "TR-SHG-0001",
	}
	mockSvc.On("Create", mock.Anything, actor, input).
		Return(&domain.Organization{ID: uuid.New(), Name: input.Name, Type: input.Type}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/organizations", input)
	setAuthContext(c, userID, domain.RoleBMMU, "DHALAI", "Ambassa")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestOrganizationHandler_Create_MissingFields(t *testing.T) {
	h, mockSvc := newOrganizationHandler()

	c, w := newContext(http.MethodPost, "/api/v1/organizations", map[string]string{"name": "No Type"})
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrganizationHandler_Create_OutOfJurisdiction(t *testing.T) {
	h, mockSvc := newOrganizationHandler()

	mockSvc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrOutOfJurisdiction)

	c, w := newContext(http.MethodPost, "/api/v1/organizations", service.CreateOrganizationInput{
		Name: "Far Away VO", Type: domain.OrgTypeVO, District: "GOMATI", RegistrationNo: "TR-VO-9",
	})
	setAuthContext(c, uuid.New(), domain.RoleDMMU, "DHALAI", "")
	h.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "OUT_OF_JURISDICTION", decode(t, w).Error.Code)
}

func TestOrganizationHandler_List_Filters(t *testing.T) {
	h, mockSvc := newOrganizationHandler()

	userID := uuid.New()
	filter := domain.OrganizationFilter{Type: domain.OrgTypeVO, District: "DHALAI"}
	mockSvc.On("List", mock.Anything, mock.Anything, filter, 10, 5).
		Return([]domain.Organization{{ID: uuid.New()}}, 11, nil)

	c, w := newContext(http.MethodGet, "/api/v1/organizations?type=vo&district=DHALAI&offset=10&limit=5", nil)
	setAuthContext(c, userID, domain.RoleNIC, "", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 11, resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.Offset)
	mockSvc.AssertExpectations(t)
}

func TestOrganizationHandler_List_InvalidType(t *testing.T) {
	h, _ := newOrganizationHandler()

	c, w := newContext(http.MethodGet, "/api/v1/organizations?type=ngo", nil)
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ORGANIZATION_TYPE", decode(t, w).Error.Code)
}

func TestOrganizationHandler_List_NoAuth(t *testing.T) {
	h, _ := newOrganizationHandler()

	c, w := newContext(http.MethodGet, "/api/v1/organizations", nil)
	h.List(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrganizationHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newOrganizationHandler()

	id := uuid.New()
	mockSvc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrOrganizationNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/organizations/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORGANIZATION_NOT_FOUND", decode(t, w).Error.Code)
}

func TestOrganizationHandler_Delete(t *testing.T) {
	h, mockSvc := newOrganizationHandler()

	id := uuid.New()
	mockSvc.On("Delete", mock.Anything, mock.Anything, id).Return(nil)

	c, w := newContext(http.MethodDelete, "/api/v1/organizations/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	setAuthContext(c, uuid.New(), domain.RoleNIC, "", "")
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
