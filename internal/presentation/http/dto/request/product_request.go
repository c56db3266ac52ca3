package request

// CreateProductRequest represents a product creation request. Amounts are
// strings so values such as "N$89.00" reach the parser untouched.
type CreateProductRequest struct {
	ID              string  `json:"id" binding:"omitempty,max=64"`
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	Barcode         *string `json:"barcode" binding:"omitempty,max=100"`
	BasePrice       string  `json:"base_price" binding:"required"`
	ProductDiscount string  `json:"product_discount"`
	BonusPattern    *string `json:"bonus_pattern" binding:"omitempty,max=100"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=2,max=255"`
	Barcode         *string `json:"barcode" binding:"omitempty,max=100"`
	BasePrice       *string `json:"base_price"`
	ProductDiscount *string `json:"product_discount"`
	BonusPattern    *string `json:"bonus_pattern" binding:"omitempty,max=100"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
	Active          *bool   `json:"active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
