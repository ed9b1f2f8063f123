package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shgportal/internal/domain"
	"shgportal/internal/service"
)

// OrganizationHandler handles CLF, VO and SHG registration endpoints.
type OrganizationHandler struct {
	orgService service.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// Create handles POST /api/v1/organizations
// @Summary Register an organization
// @Description District and block officers may only register inside their jurisdiction.
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body CreateOrganizationRequest true "Organization details"
// @Success 201 {object} Response{data=domain.Organization}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Failure 409 {object} ErrorResponseBody "Duplicate registration number"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var input service.CreateOrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), actor, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, org)
}

// List handles GET /api/v1/organizations
// @Summary List organizations
// @Description Results are narrowed to the caller's jurisdiction.
// @Tags organizations
// @Produce json
// @Param type query string false "clf, vo or shg"
// @Param district query string false "District"
// @Param block query string false "Block"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Organization,meta=PagMeta}
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	filter := domain.OrganizationFilter{
		Type:     domain.OrganizationType(c.Query("type")),
		District: c.Query("district"),
		Block:    c.Query("block"),
	}
	if filter.Type != "" && !domain.ValidOrganizationTypes[filter.Type] {
		HandleError(c, domain.ErrInvalidOrgType)
		return
	}
	offset, limit := pagination(c)

	orgs, total, err := h.orgService.List(c.Request.Context(), actor, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, orgs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/organizations/:id
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} Response{data=domain.Organization}
// @Failure 404 {object} ErrorResponseBody "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid organization ID")
		return
	}

	org, err := h.orgService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, org)
}

// Update handles PUT /api/v1/organizations/:id
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Organization}
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Failure 404 {object} ErrorResponseBody "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid organization ID")
		return
	}

	var input service.UpdateOrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, org)
}

// Delete handles DELETE /api/v1/organizations/:id
// @Summary Delete an organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Failure 404 {object} ErrorResponseBody "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid organization ID")
		return
	}

	if err := h.orgService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "organization deleted"})
}
