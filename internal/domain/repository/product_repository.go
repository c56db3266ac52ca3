package repository

import (
	"context"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID returns (nil, nil) when no product has the id
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateFields writes only the non-nil fields of patch
	UpdateFields(ctx context.Context, id string, patch ProductPatch) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	ActiveOnly bool
}

// ProductPatch is a partial product update
type ProductPatch struct {
	Name            *string
	Barcode         *string
	BasePrice       *string
	ProductDiscount *string
	BonusPattern    *string
	Category        *string
	Active          *bool
}

// IsEmpty reports whether the patch changes nothing
func (p ProductPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the set fields to their column names
func (p ProductPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Barcode != nil {
		cols["barcode"] = *p.Barcode
	}
	if p.BasePrice != nil {
		cols["base_price"] = *p.BasePrice
	}
	if p.ProductDiscount != nil {
		cols["product_discount"] = *p.ProductDiscount
	}
	if p.BonusPattern != nil {
		cols["bonus_pattern"] = *p.BonusPattern
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Active != nil {
		cols["active"] = *p.Active
	}
	return cols
}
