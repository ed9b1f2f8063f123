package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shgportal/internal/service"
)

// ProductHandler handles the product catalogue of organizations.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/v1/organizations/:id/products
// @Summary Add a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body CreateProductRequest true "Product details"
// @Success 201 {object} Response{data=domain.Product}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Out of jurisdiction"
// @Failure 404 {object} ErrorResponseBody "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid organization ID")
		return
	}

	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), actor, orgID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, product)
}

// ListByOrganization handles GET /api/v1/organizations/:id/products
// @Summary List an organization's products
// @Tags products
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Product,meta=PagMeta}
// @Failure 404 {object} ErrorResponseBody "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/products [get]
func (h *ProductHandler) ListByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid organization ID")
		return
	}
	offset, limit := pagination(c)

	products, total, err := h.productService.ListByOrganization(c.Request.Context(), orgID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 400 {object} ErrorResponseBody "Negative price or stock"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	var input service.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), actor, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "product deleted"})
}
