package service

import (
	"context"
	"strings"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"github.com/sangkips/cospharm-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	ID              string
	Name            string
	Barcode         *string
	BasePrice       string
	ProductDiscount string
	BonusPattern    *string
	Category        *string
}

// CreateProduct creates a new active product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInputError("name", "name is required")
	}
	basePrice, err := canonicalMoney("base_price", input.BasePrice)
	if err != nil {
		return nil, err
	}
	discount, err := canonicalPercentage("product_discount", input.ProductDiscount)
	if err != nil {
		return nil, err
	}

	id := utils.NormalizeID(input.ID)
	if id != "" {
		existing, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, apperror.NewStoreUnavailableError("catalog", err)
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product id already exists")
		}
	}

	product := &entity.Product{
		ID:              id,
		Name:            name,
		Barcode:         trimmedOrNil(input.Barcode),
		BasePrice:       basePrice,
		ProductDiscount: discount,
		BonusPattern:    trimmedOrNil(input.BonusPattern),
		Category:        trimmedOrNil(input.Category),
		Active:          true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.NewStoreUnavailableError("catalog", err)
	}
	return product, nil
}

// GetProduct retrieves a product by ID, active or not
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	id = utils.NormalizeID(id)
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("catalog", err)
	}
	if product == nil {
		return nil, apperror.NewRecordNotFoundError("Product", id)
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("catalog", err)
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents a partial product update. Nil fields are left unchanged.
type UpdateProductInput struct {
	ID              string
	Name            *string
	Barcode         *string
	BasePrice       *string
	ProductDiscount *string
	BonusPattern    *string
	Category        *string
	Active          *bool
}

// UpdateProduct applies a partial update and returns the stored product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewInvalidInputError("name", "name must not be empty")
		}
		product.Name = name
	}
	if input.BasePrice != nil {
		if product.BasePrice, err = canonicalMoney("base_price", *input.BasePrice); err != nil {
			return nil, err
		}
	}
	if input.ProductDiscount != nil {
		if product.ProductDiscount, err = canonicalPercentage("product_discount", *input.ProductDiscount); err != nil {
			return nil, err
		}
	}
	if input.Barcode != nil {
		product.Barcode = trimmedOrNil(input.Barcode)
	}
	if input.BonusPattern != nil {
		product.BonusPattern = trimmedOrNil(input.BonusPattern)
	}
	if input.Category != nil {
		product.Category = trimmedOrNil(input.Category)
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.NewStoreUnavailableError("catalog", err)
	}
	return product, nil
}

// DeactivateProduct marks a product inactive so it can no longer be priced
func (s *ProductService) DeactivateProduct(ctx context.Context, id string) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	inactive := false
	if err := s.productRepo.UpdateFields(ctx, product.ID, repository.ProductPatch{Active: &inactive}); err != nil {
		return apperror.NewStoreUnavailableError("catalog", err)
	}
	return nil
}
