package service

import (
	"context"
	"strings"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"github.com/sangkips/cospharm-api/pkg/utils"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	ID             string
	Name           string
	Email          *string
	Phone          *string
	Address        *string
	LogFeeDiscount string
	CustomerType   string
}

// CreateCustomer creates a new active customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInputError("name", "name is required")
	}
	logFee, err := canonicalPercentage("log_fee_discount", input.LogFeeDiscount)
	if err != nil {
		return nil, err
	}
	customerType, err := customerTypeOf(input.CustomerType)
	if err != nil {
		return nil, err
	}

	id := utils.NormalizeID(input.ID)
	if id != "" {
		existing, err := s.customerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, apperror.NewStoreUnavailableError("customer", err)
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer id already exists")
		}
	}

	customer := &entity.Customer{
		ID:             id,
		Name:           name,
		Email:          trimmedOrNil(input.Email),
		Phone:          trimmedOrNil(input.Phone),
		Address:        trimmedOrNil(input.Address),
		LogFeeDiscount: logFee,
		CustomerType:   customerType,
		Active:         true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, apperror.NewStoreUnavailableError("customer", err)
	}
	return customer, nil
}

func customerTypeOf(raw string) (enum.CustomerType, error) {
	if strings.TrimSpace(raw) == "" {
		return enum.CustomerTypeRetail, nil
	}
	t, ok := enum.ParseCustomerType(raw)
	if !ok {
		return "", apperror.NewInvalidInputError("customer_type", "customer_type must be one of retail, wholesale, hospital, pharmacy, clinic")
	}
	return t, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	id = utils.NormalizeID(id)
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("customer", err)
	}
	if customer == nil {
		return nil, apperror.NewRecordNotFoundError("Customer", id)
	}
	return customer, nil
}

// ListCustomers lists customers matching search on name, email or phone
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	params.Validate()
	customers, total, err := s.customerRepo.List(ctx, params, strings.TrimSpace(search))
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("customer", err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents a partial customer update
type UpdateCustomerInput struct {
	ID             string
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	LogFeeDiscount *string
	CustomerType   *string
	Active         *bool
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewInvalidInputError("name", "name must not be empty")
		}
		customer.Name = name
	}
	if input.LogFeeDiscount != nil {
		if customer.LogFeeDiscount, err = canonicalPercentage("log_fee_discount", *input.LogFeeDiscount); err != nil {
			return nil, err
		}
	}
	if input.CustomerType != nil {
		if customer.CustomerType, err = customerTypeOf(*input.CustomerType); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		customer.Email = trimmedOrNil(input.Email)
	}
	if input.Phone != nil {
		customer.Phone = trimmedOrNil(input.Phone)
	}
	if input.Address != nil {
		customer.Address = trimmedOrNil(input.Address)
	}
	if input.Active != nil {
		customer.Active = *input.Active
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, apperror.NewStoreUnavailableError("customer", err)
	}
	return customer, nil
}

// DeactivateCustomer marks a customer inactive. Existing audits keep referencing it.
func (s *CustomerService) DeactivateCustomer(ctx context.Context, id string) error {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	customer.Active = false
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return apperror.NewStoreUnavailableError("customer", err)
	}
	return nil
}
