package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shgportal/internal/domain"
	"shgportal/internal/service"
)

// ReportHandler handles report export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseFormat(c *gin.Context, fallback domain.ReportFormat) (domain.ReportFormat, bool) {
	format := domain.ReportFormat(c.DefaultQuery("format", string(fallback)))
	if _, ok := domain.ReportContentTypes[format]; !ok {
		HandleError(c, domain.ErrUnsupportedFormat)
		return "", false
	}
	return format, true
}

func sendFile(c *gin.Context, file *service.ReportFile) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Members handles GET /api/v1/reports/shg-members
// @Summary Export SHG members
// @Description Every member of every SHG under the given path, narrowed to the caller's jurisdiction.
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param district query string false "District"
// @Param block query string false "Block"
// @Param gram_panchayat query string false "Gram panchayat"
// @Param village query string false "Village"
// @Param shg query string false "SHG"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Security BearerAuth
// @Router /reports/shg-members [get]
func (h *ReportHandler) Members(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c, domain.ReportFormatCSV)
	if !ok {
		return
	}

	file, err := h.reportService.MemberReport(c.Request.Context(), actor, pathFromQuery(c), format)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendFile(c, file)
}

// Summary handles GET /api/v1/reports/summary
// @Summary Export area summary
// @Description SHGs, members and savings per district, block or gram panchayat depending on the caller's role.
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(xlsx)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c, domain.ReportFormatXLSX)
	if !ok {
		return
	}

	file, err := h.reportService.SummaryReport(c.Request.Context(), actor, format)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendFile(c, file)
}

// PublishMembers handles POST /api/v1/reports/shg-members/publish
// @Summary Publish SHG member report
// @Description Uploads the XLSX report to object storage and e-mails a download link to the caller.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body PublishReportRequest true "Location path and recipient name"
// @Success 201 {object} Response{data=service.PublishedReport}
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Failure 502 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /reports/shg-members/publish [post]
func (h *ReportHandler) PublishMembers(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	var req PublishReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.reportService.PublishMemberReport(c.Request.Context(), actor, req.Path(), req.RecipientName)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, out)
}
