package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	repo := newFakeProductRepo(entity.Product{ID: "prod-1", Name: "Acne-Aid", BasePrice: "89.00", Active: true})
	svc := NewProductService(repo)

	t.Run("canonicalises values", func(t *testing.T) {
		p, err := svc.CreateProduct(context.Background(), &CreateProductInput{
			Name:            "  Sunscreen  ",
			BasePrice:       "N$120.5",
			ProductDiscount: "",
			Category:        strPtr(" "),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Sunscreen", p.Name)
		assert.Equal(t, "120.50", p.BasePrice)
		assert.Equal(t, "0.00", p.ProductDiscount)
		assert.Nil(t, p.Category)
		assert.True(t, p.Active)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), &CreateProductInput{ID: "prod-1", Name: "Again", BasePrice: "1"})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	cases := []struct {
		name  string
		input CreateProductInput
		field string
	}{
		{"missing name", CreateProductInput{BasePrice: "1"}, "name"},
		{"bad price", CreateProductInput{Name: "x", BasePrice: "abc"}, "base_price"},
		{"negative price", CreateProductInput{Name: "x", BasePrice: "-1"}, "base_price"},
		{"discount above 100", CreateProductInput{Name: "x", BasePrice: "1", ProductDiscount: "120"}, "product_discount"},
		{"negative discount", CreateProductInput{Name: "x", BasePrice: "1", ProductDiscount: "-5"}, "product_discount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), &tc.input)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
			assert.Equal(t, tc.field, appErr.Field)
		})
	}
}

func TestProductService_UpdateAndDeactivate(t *testing.T) {
	repo := newFakeProductRepo(entity.Product{ID: "prod-1", Name: "Acne-Aid", BasePrice: "89.00", ProductDiscount: "40.00", Active: true})
	svc := NewProductService(repo)

	p, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{ID: "prod-1", BasePrice: strPtr("95"), BonusPattern: strPtr("2@30%")})
	require.NoError(t, err)
	assert.Equal(t, "95.00", p.BasePrice)
	assert.Equal(t, "40.00", p.ProductDiscount)
	require.NotNil(t, p.BonusPattern)
	assert.Equal(t, "2@30%", *p.BonusPattern)

	require.NoError(t, svc.DeactivateProduct(context.Background(), "prod-1"))
	assert.False(t, repo.products["prod-1"].Active)

	_, err = svc.UpdateProduct(context.Background(), &UpdateProductInput{ID: "missing"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestProductService_ListStoreUnavailable(t *testing.T) {
	repo := newFakeProductRepo()
	repo.getErr = errors.New("down")
	svc := NewProductService(repo)

	_, err := svc.ListProducts(context.Background(), &repository.ProductFilterParams{})
	assert.True(t, apperror.IsKind(err, apperror.KindStoreUnavailable))
}

func TestProductService_List(t *testing.T) {
	repo := newFakeProductRepo(
		entity.Product{ID: "a", Active: true},
		entity.Product{ID: "b", Active: false},
	)
	svc := NewProductService(repo)

	result, err := svc.ListProducts(context.Background(), &repository.ProductFilterParams{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
}

func TestCustomerService(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "Swakopmund Wholesale", LogFeeDiscount: "7.5", CustomerType: "Wholesale"})
	require.NoError(t, err)
	assert.Equal(t, "7.50", c.LogFeeDiscount)
	assert.Equal(t, enum.CustomerTypeWholesale, c.CustomerType)

	d, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "Walk-in"})
	require.NoError(t, err)
	assert.Equal(t, enum.CustomerTypeRetail, d.CustomerType)
	assert.Equal(t, "0.00", d.LogFeeDiscount)

	_, err = svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "x", CustomerType: "vip"})
	assert.Equal(t, "customer_type", apperror.GetAppError(err).Field)

	updated, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{ID: c.ID, LogFeeDiscount: strPtr("3")})
	require.NoError(t, err)
	assert.Equal(t, "3.00", updated.LogFeeDiscount)

	require.NoError(t, svc.DeactivateCustomer(context.Background(), c.ID))
	assert.False(t, repo.customers[c.ID].Active)

	_, err = svc.GetCustomer(context.Background(), "nobody")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	result, err := svc.ListCustomers(context.Background(), &pagination.PaginationParams{}, "")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 15, result.Pagination.PerPage)
}

func TestPromotionService_Create(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30 * 24 * time.Hour)

	cases := []struct {
		name  string
		input CreatePromotionInput
		field string
	}{
		{"unknown type", CreatePromotionInput{Name: "p", PromotionType: "bogo", StartDate: start, EndDate: end}, "promotion_type"},
		{"end before start", CreatePromotionInput{Name: "p", PromotionType: "percentage", DiscountValue: strPtr("5"), StartDate: end, EndDate: start}, "end_date"},
		{"percentage without value", CreatePromotionInput{Name: "p", PromotionType: "percentage", StartDate: start, EndDate: end}, "discount_value"},
		{"percentage out of range", CreatePromotionInput{Name: "p", PromotionType: "percentage", DiscountValue: strPtr("150"), StartDate: start, EndDate: end}, "discount_value"},
		{"fixed amount negative", CreatePromotionInput{Name: "p", PromotionType: "fixed_amount", DiscountValue: strPtr("-3"), StartDate: start, EndDate: end}, "discount_value"},
		{"bonus buy without pattern", CreatePromotionInput{Name: "p", PromotionType: "bonus_buy", StartDate: start, EndDate: end}, "bonus_pattern"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewPromotionService(&fakePromotionRepo{})
			_, err := svc.CreatePromotion(context.Background(), &tc.input)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
			assert.Equal(t, tc.field, appErr.Field)
		})
	}

	t.Run("valid percentage", func(t *testing.T) {
		repo := &fakePromotionRepo{}
		svc := NewPromotionService(repo)
		p, err := svc.CreatePromotion(context.Background(), &CreatePromotionInput{
			Name: "Winter", PromotionType: "Percentage", DiscountValue: strPtr("12.5"),
			StartDate: start, EndDate: start, Priority: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.PromotionTypePercentage, p.PromotionType)
		assert.Equal(t, "12.50", *p.DiscountValue)
		assert.True(t, p.Active)
		assert.Len(t, repo.promotions, 1)

		require.NoError(t, svc.DeletePromotion(context.Background(), p.ID))
		assert.Empty(t, repo.promotions)
	})
}
