package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shgportal/internal/middleware"
	"shgportal/internal/service"
)

// NavigatorHandler exposes the caller's cascading location selection.
type NavigatorHandler struct {
	navService service.NavigatorService
}

// NewNavigatorHandler creates a new NavigatorHandler.
func NewNavigatorHandler(navService service.NavigatorService) *NavigatorHandler {
	return &NavigatorHandler{navService: navService}
}

func (h *NavigatorHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, false
	}
	return id, true
}

// bindName reads the {"name": ...} body of a selector call. An empty name
// clears the level.
func bindName(c *gin.Context) (string, bool) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return "", false
	}
	return req.Name, true
}

type guardedSelect func(userID uuid.UUID, name string) (service.NavigatorState, error)

func (h *NavigatorHandler) selectLevel(c *gin.Context, sel guardedSelect) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	name, ok := bindName(c)
	if !ok {
		return
	}

	state, err := sel(userID, name)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, state)
}

// State handles GET /api/v1/navigator
// @Summary Current selection
// @Description Selection, member list and the option list of every level.
// @Tags navigator
// @Produce json
// @Success 200 {object} Response{data=service.NavigatorState}
// @Security BearerAuth
// @Router /navigator [get]
func (h *NavigatorHandler) State(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	RespondOK(c, h.navService.State(userID))
}

// SelectDistrict handles PUT /api/v1/navigator/district
// @Summary Select a district
// @Description Clears block, gram panchayat, village, SHG and members.
// @Tags navigator
// @Accept json
// @Produce json
// @Param request body SelectRequest true "District name"
// @Success 200 {object} Response{data=service.NavigatorState}
// @Security BearerAuth
// @Router /navigator/district [put]
func (h *NavigatorHandler) SelectDistrict(c *gin.Context) {
	h.selectLevel(c, func(userID uuid.UUID, name string) (service.NavigatorState, error) {
		return h.navService.SelectDistrict(userID, name), nil
	})
}

// SelectBlock handles PUT /api/v1/navigator/block
// @Summary Select a block
// @Description Clears gram panchayat, village, SHG and members. Requires a district.
// @Tags navigator
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Block name"
// @Success 200 {object} Response{data=service.NavigatorState}
// @Failure 409 {object} ErrorResponseBody "No district selected"
// @Security BearerAuth
// @Router /navigator/block [put]
func (h *NavigatorHandler) SelectBlock(c *gin.Context) {
	h.selectLevel(c, h.navService.SelectBlock)
}

// SelectGramPanchayat handles PUT /api/v1/navigator/gram-panchayat
// @Summary Select a gram panchayat
// @Description Clears village, SHG and members. Requires a block.
// @Tags navigator
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Gram panchayat name"
// @Success 200 {object} Response{data=service.NavigatorState}
// @Failure 409 {object} ErrorResponseBody "No block selected"
// @Security BearerAuth
// @Router /navigator/gram-panchayat [put]
func (h *NavigatorHandler) SelectGramPanchayat(c *gin.Context) {
	h.selectLevel(c, h.navService.SelectGramPanchayat)
}

// SelectVillage handles PUT /api/v1/navigator/village
// @Summary Select a village
// @Description Clears SHG and members. Requires a gram panchayat.
// @Tags navigator
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Village name"
// @Success 200 {object} Response{data=service.NavigatorState}
// @Failure 409 {object} ErrorResponseBody "No gram panchayat selected"
// @Security BearerAuth
// @Router /navigator/village [put]
func (h *NavigatorHandler) SelectVillage(c *gin.Context) {
	h.selectLevel(c, h.navService.SelectVillage)
}

// SelectSHG handles PUT /api/v1/navigator/shg
// @Summary Select an SHG
// @Description Loads the SHG's members; an unknown SHG yields an empty list. Requires a village.
// @Tags navigator
// @Accept json
// @Produce json
// @Param request body SelectRequest true "SHG name"
// @Success 200 {object} Response{data=service.NavigatorState}
// @Failure 409 {object} ErrorResponseBody "No village selected"
// @Security BearerAuth
// @Router /navigator/shg [put]
func (h *NavigatorHandler) SelectSHG(c *gin.Context) {
	h.selectLevel(c, h.navService.SelectSHG)
}

// Reset handles DELETE /api/v1/navigator
// @Summary Clear the selection
// @Tags navigator
// @Produce json
// @Success 200 {object} Response{data=service.NavigatorState}
// @Security BearerAuth
// @Router /navigator [delete]
func (h *NavigatorHandler) Reset(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	RespondOK(c, h.navService.Reset(userID))
}
