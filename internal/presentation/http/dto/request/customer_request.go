package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	ID             string  `json:"id" binding:"omitempty,max=64"`
	Name           string  `json:"name" binding:"required,min=2,max=255"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	Address        *string `json:"address"`
	LogFeeDiscount string  `json:"log_fee_discount"`
	CustomerType   string  `json:"customer_type"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	Address        *string `json:"address"`
	LogFeeDiscount *string `json:"log_fee_discount"`
	CustomerType   *string `json:"customer_type"`
	Active         *bool   `json:"active"`
}
