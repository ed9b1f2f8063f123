package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"shgportal/internal/domain"
	"shgportal/internal/port"
)

// CreateProductInput is the DTO for adding a product to an organization.
type CreateProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// UpdateProductInput is the DTO for updating a product.
type UpdateProductInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
}

// ProductService defines the product catalogue contract.
type ProductService interface {
	Create(ctx context.Context, actor Actor, orgID uuid.UUID, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type productService struct {
	productRepo port.ProductRepository
	orgRepo     port.OrganizationRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(productRepo port.ProductRepository, orgRepo port.OrganizationRepository) ProductService {
	return &productService{productRepo: productRepo, orgRepo: orgRepo}
}

// authorizeOrg loads the owning organization and checks the actor's scope.
func (s *productService) authorizeOrg(ctx context.Context, actor Actor, orgID uuid.UUID) error {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return err
	}
	return actor.authorize(org.District, org.Block)
}

func (s *productService) Create(ctx context.Context, actor Actor, orgID uuid.UUID, input CreateProductInput) (*domain.Product, error) {
	if input.Price < 0 || input.Stock < 0 {
		return nil, domain.ErrInvalidProduct
	}
	if err := s.authorizeOrg(ctx, actor, orgID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(input.Name),
		Category:       input.Category,
		Unit:           input.Unit,
		Price:          input.Price,
		Stock:          input.Stock,
		CreatedBy:      actor.UserID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) ListByOrganization(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]domain.Product, int, error) {
	if _, err := s.orgRepo.GetByID(ctx, orgID); err != nil {
		return nil, 0, err
	}
	return s.productRepo.ListByOrganization(ctx, orgID, offset, limit)
}

func (s *productService) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOrg(ctx, actor, product.OrganizationID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if product.Price < 0 || product.Stock < 0 {
		return nil, domain.ErrInvalidProduct
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeOrg(ctx, actor, product.OrganizationID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
