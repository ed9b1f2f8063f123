package handler

import (
	"github.com/gin-gonic/gin"

	"shgportal/internal/location"
	"shgportal/internal/service"
)

// LocationHandler serves stateless lookups on the location tree.
type LocationHandler struct {
	locService service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locService service.LocationService) *LocationHandler {
	return &LocationHandler{locService: locService}
}

func pathFromQuery(c *gin.Context) location.Path {
	return location.Path{
		District:      c.Query("district"),
		Block:         c.Query("block"),
		GramPanchayat: c.Query("gram_panchayat"),
		Village:       c.Query("village"),
		SHG:           c.Query("shg"),
	}
}

// Districts handles GET /api/v1/locations/districts
// @Summary List districts
// @Tags locations
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Security BearerAuth
// @Router /locations/districts [get]
func (h *LocationHandler) Districts(c *gin.Context) {
	RespondOK(c, h.locService.Districts())
}

// Blocks handles GET /api/v1/locations/blocks
// @Summary List blocks of a district
// @Tags locations
// @Produce json
// @Param district query string true "District"
// @Success 200 {object} Response{data=[]string}
// @Security BearerAuth
// @Router /locations/blocks [get]
func (h *LocationHandler) Blocks(c *gin.Context) {
	p := pathFromQuery(c)
	RespondOK(c, h.locService.Blocks(p.District))
}

// GramPanchayats handles GET /api/v1/locations/gram-panchayats
// @Summary List gram panchayats of a block
// @Tags locations
// @Produce json
// @Param district query string true "District"
// @Param block query string true "Block"
// @Success 200 {object} Response{data=[]string}
// @Security BearerAuth
// @Router /locations/gram-panchayats [get]
func (h *LocationHandler) GramPanchayats(c *gin.Context) {
	p := pathFromQuery(c)
	RespondOK(c, h.locService.GramPanchayats(p.District, p.Block))
}

// Villages handles GET /api/v1/locations/villages
// @Summary List villages of a gram panchayat
// @Tags locations
// @Produce json
// @Param district query string true "District"
// @Param block query string true "Block"
// @Param gram_panchayat query string true "Gram panchayat"
// @Success 200 {object} Response{data=[]string}
// @Security BearerAuth
// @Router /locations/villages [get]
func (h *LocationHandler) Villages(c *gin.Context) {
	p := pathFromQuery(c)
	RespondOK(c, h.locService.Villages(p.District, p.Block, p.GramPanchayat))
}

// SHGs handles GET /api/v1/locations/shgs
// @Summary List SHGs of a village
// @Tags locations
// @Produce json
// @Param district query string true "District"
// @Param block query string true "Block"
// @Param gram_panchayat query string true "Gram panchayat"
// @Param village query string true "Village"
// @Success 200 {object} Response{data=[]string}
// @Security BearerAuth
// @Router /locations/shgs [get]
func (h *LocationHandler) SHGs(c *gin.Context) {
	p := pathFromQuery(c)
	RespondOK(c, h.locService.SHGs(p.District, p.Block, p.GramPanchayat, p.Village))
}

// SHG handles GET /api/v1/locations/shg
// @Summary Get an SHG with members and products
// @Tags locations
// @Produce json
// @Param district query string true "District"
// @Param block query string true "Block"
// @Param gram_panchayat query string true "Gram panchayat"
// @Param village query string true "Village"
// @Param shg query string true "SHG"
// @Success 200 {object} Response{data=service.SHGView}
// @Failure 404 {object} ErrorResponseBody "SHG not found"
// @Security BearerAuth
// @Router /locations/shg [get]
func (h *LocationHandler) SHG(c *gin.Context) {
	view, err := h.locService.SHG(pathFromQuery(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}
