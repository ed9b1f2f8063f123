package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shgportal/internal/domain"
	"shgportal/internal/middleware"
	"shgportal/internal/service"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "invalid role; allowed: nic, dmmu, bmmu, clf, vo, shg"
	case errors.Is(err, domain.ErrInvalidJurisdiction):
		return http.StatusBadRequest, "INVALID_JURISDICTION", "dmmu requires a district; bmmu requires a district and block"
	case errors.Is(err, domain.ErrOutOfJurisdiction):
		return http.StatusForbidden, "OUT_OF_JURISDICTION", "resource is outside your district or block"
	case errors.Is(err, domain.ErrOrganizationNotFound):
		return http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "organization not found"
	case errors.Is(err, domain.ErrInvalidOrgType):
		return http.StatusBadRequest, "INVALID_ORGANIZATION_TYPE", "invalid organization type; allowed: clf, vo, shg"
	case errors.Is(err, domain.ErrDuplicateRegistration):
		return http.StatusConflict, "DUPLICATE_REGISTRATION", "registration number already exists"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found"
	case errors.Is(err, domain.ErrInvalidProduct):
		return http.StatusBadRequest, "INVALID_PRODUCT", "price and stock must not be negative"
	case errors.Is(err, domain.ErrSelectionOrder):
		return http.StatusConflict, "SELECTION_ORDER", "select the parent location first"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported report format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, "UPLOAD_FAILED", "report upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		zap.L().Error("internal error",
			zap.String("request_id", c.GetString(middleware.ContextKeyRequestID)),
			zap.Error(err),
		)
	}
	RespondError(c, status, code, msg)
}

// extractActor builds the acting user from the auth context.
// Returns false if auth context is missing (error response already written).
func extractActor(c *gin.Context) (service.Actor, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return service.Actor{}, false
	}
	return service.Actor{
		UserID: userID,
		Email:  c.GetString(middleware.ContextKeyEmail),
		Role:   middleware.GetRole(c),
		Scope:  middleware.GetJurisdiction(c),
	}, true
}

// pagination reads offset and limit query parameters with the usual bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
