package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/apperror"
	"github.com/sangkips/cospharm-api/pkg/clock"
	"github.com/sangkips/cospharm-api/pkg/metrics"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"github.com/sangkips/cospharm-api/pkg/pricing"
	"github.com/sangkips/cospharm-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// PricingOptions tunes the orchestrator
type PricingOptions struct {
	PromotionsEnabled bool
	AuditDefaultLimit int
	AuditMaxLimit     int
}

// PricingService resolves products, customers and promotions into engine
// inputs, runs the discount engine and records the audit trail.
type PricingService struct {
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	promotionRepo repository.PromotionRepository
	auditRepo     repository.PricingAuditRepository
	clock         clock.Clock
	auditClock    clock.Clock
	appliers      map[enum.PromotionType]PromotionApplier
	opts          PricingOptions
	metrics       *metrics.Metrics
	log           zerolog.Logger
}

// NewPricingService creates a new pricing service
func NewPricingService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	promotionRepo repository.PromotionRepository,
	auditRepo repository.PricingAuditRepository,
	clk clock.Clock,
	opts PricingOptions,
	m *metrics.Metrics,
	log zerolog.Logger,
) *PricingService {
	if opts.AuditDefaultLimit <= 0 {
		opts.AuditDefaultLimit = 50
	}
	if opts.AuditMaxLimit < opts.AuditDefaultLimit {
		opts.AuditMaxLimit = opts.AuditDefaultLimit
	}
	return &PricingService{
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		promotionRepo: promotionRepo,
		auditRepo:     auditRepo,
		clock:         clk,
		auditClock:    clock.NewMonotonic(clk),
		appliers:      DefaultPromotionAppliers(),
		opts:          opts,
		metrics:       m,
		log:           log.With().Str("component", "pricing").Logger(),
	}
}

// CalculatePriceInput represents a price calculation request
type CalculatePriceInput struct {
	ProductID    string
	CustomerID   *string
	AsOf         *time.Time
	CalculatedBy *string
}

// PriceCalculation is the rounded breakdown returned to callers together
// with the identifiers that produced it.
type PriceCalculation struct {
	pricing.Summary
	ProductID    string            `json:"product_id"`
	ProductName  string            `json:"product_name"`
	CustomerID   *string           `json:"customer_id,omitempty"`
	CustomerName *string           `json:"customer_name,omitempty"`
	PromotionID  *string           `json:"promotion_id,omitempty"`
	AuditID      string            `json:"audit_id"`
	CalculatedAt time.Time         `json:"calculated_at"`
	Breakdown    pricing.Breakdown `json:"-"`
}

// CalculatePrice computes and audits the price of a product for an optional customer
func (s *PricingService) CalculatePrice(ctx context.Context, input *CalculatePriceInput) (*PriceCalculation, error) {
	start := time.Now()
	calc, err := s.calculate(ctx, input)
	s.metrics.ObserveCalculation(outcomeOf(err), time.Since(start).Seconds())
	return calc, err
}

func (s *PricingService) calculate(ctx context.Context, input *CalculatePriceInput) (*PriceCalculation, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, apperror.NewInvalidInputError("product_id", "product_id is required")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", productID).Msg("catalog read failed")
		return nil, apperror.NewStoreUnavailableError("catalog", err)
	}
	if product == nil || !product.Active {
		return nil, apperror.NewRecordNotFoundError("Product", productID)
	}

	var customer *entity.Customer
	if customerID := trimmedOrNil(input.CustomerID); customerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			s.log.Warn().Err(err).Str("customer_id", *customerID).Msg("customer read failed")
			return nil, apperror.NewStoreUnavailableError("customer", err)
		}
		if customer == nil {
			return nil, apperror.NewRecordNotFoundError("Customer", *customerID)
		}
	}

	asOf := s.clock.Now()
	if input.AsOf != nil {
		asOf = *input.AsOf
	}

	var promotion *entity.Promotion
	if s.opts.PromotionsEnabled {
		eligible, err := s.promotionRepo.ListEligible(ctx, asOf)
		if err != nil {
			s.log.Warn().Err(err).Time("as_of", asOf).Msg("promotion read failed")
			return nil, apperror.NewStoreUnavailableError("promotion", err)
		}
		promotion = SelectPromotion(eligible, asOf, s.appliers)
	}

	discounts, base, err := s.resolveInputs(product, customer, promotion)
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.Calculate(base, discounts)
	if err != nil {
		invalid := apperror.NewInvalidInputError("base_price", "base price must not be negative")
		invalid.RecordID = product.ID
		invalid.Cause = err
		return nil, invalid
	}

	audit := s.newAudit(product, customer, promotion, breakdown, input.CalculatedBy)
	if err := s.auditRepo.Append(ctx, audit); err != nil {
		s.log.Error().Err(err).
			Str("product_id", product.ID).
			Str("final_price", pricing.FormatMoney(breakdown.FinalPrice)).
			Msg("pricing audit write failed, calculation rejected")
		return nil, apperror.NewAuditWriteFailedError(product.ID, err)
	}

	calc := &PriceCalculation{
		Summary:      breakdown.Summary(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		AuditID:      audit.ID,
		CalculatedAt: audit.CreatedAt,
		Breakdown:    breakdown,
	}
	if customer != nil {
		calc.CustomerID = &customer.ID
		calc.CustomerName = &customer.Name
	}
	if promotion != nil {
		calc.PromotionID = &promotion.ID
		calc.AppliedPromotionName = &promotion.Name
	}

	s.log.Debug().
		Str("product_id", product.ID).
		Str("final_price", calc.FinalPrice).
		Str("audit_id", audit.ID).
		Msg("price calculated")

	return calc, nil
}

func (s *PricingService) resolveInputs(product *entity.Product, customer *entity.Customer, promotion *entity.Promotion) (pricing.Discounts, decimal.Decimal, error) {
	var d pricing.Discounts

	base, err := pricing.ParseMoney(product.BasePrice)
	if err != nil {
		return d, base, malformed("Product", product.ID, "base_price", err)
	}

	d.Product, err = pricing.ParseOptionalPercentage(product.ProductDiscount)
	if err != nil {
		return d, base, malformed("Product", product.ID, "product_discount", err)
	}

	if customer != nil {
		d.LogFee, err = pricing.ParseOptionalPercentage(customer.LogFeeDiscount)
		if err != nil {
			return d, base, malformed("Customer", customer.ID, "log_fee_discount", err)
		}
	}

	if promotion != nil {
		pct, ok, err := s.appliers[promotion.PromotionType](promotion)
		if err != nil {
			return d, base, malformed("Promotion", promotion.ID, "discount_value", err)
		}
		if ok {
			d.Promotion = &pct
		}
	}

	return d, base, nil
}

func (s *PricingService) newAudit(product *entity.Product, customer *entity.Customer, promotion *entity.Promotion, b pricing.Breakdown, calculatedBy *string) *entity.PricingAudit {
	audit := &entity.PricingAudit{
		ProductID:       product.ID,
		BasePrice:       pricing.FormatMoney(b.BasePrice),
		ProductDiscount: pricing.FormatPercentage(b.ProductDiscount),
		LogFeeDiscount:  pricing.FormatPercentage(b.LogFeeDiscount),
		FinalPrice:      pricing.FormatMoney(b.FinalPrice),
		CalculatedBy:    trimmedOrNil(calculatedBy),
		CreatedAt:       s.auditClock.Now(),
	}
	audit.ID = utils.NewID()
	if customer != nil {
		id := customer.ID
		audit.CustomerID = &id
	}
	if promotion != nil && b.HasPromotion {
		id := promotion.ID
		pct := pricing.FormatPercentage(b.PromotionDiscount)
		audit.PromotionID = &id
		audit.PromotionDiscount = &pct
	}
	return audit
}

func malformed(resource, id, field string, err error) error {
	return apperror.NewMalformedValueError(resource, id, field, err)
}

// ListRecentAudits returns the most recent audit records, newest first
func (s *PricingService) ListRecentAudits(ctx context.Context, limit int) ([]entity.PricingAudit, error) {
	limit = pagination.ClampLimit(limit, s.opts.AuditDefaultLimit, s.opts.AuditMaxLimit)
	audits, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("audit", err)
	}
	return audits, nil
}

// ListProductAudits returns the most recent audit records of one product
func (s *PricingService) ListProductAudits(ctx context.Context, productID string, limit int) ([]entity.PricingAudit, error) {
	limit = pagination.ClampLimit(limit, s.opts.AuditDefaultLimit, s.opts.AuditMaxLimit)
	audits, err := s.auditRepo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("audit", err)
	}
	return audits, nil
}

// PreviewInput carries caller supplied values for an unaudited preview
type PreviewInput struct {
	BasePrice         string
	ProductDiscount   string
	PromotionDiscount *string
	LogFeeDiscount    string
}

// Preview runs the discount engine over caller supplied values. Nothing is
// read from or written to any store.
func (s *PricingService) Preview(input *PreviewInput) (*pricing.Summary, error) {
	base, err := pricing.ParseMoney(input.BasePrice)
	if err != nil {
		return nil, apperror.NewInvalidInputError("base_price", "base_price is not a valid amount")
	}

	var d pricing.Discounts
	if d.Product, err = pricing.ParseOptionalPercentage(input.ProductDiscount); err != nil {
		return nil, apperror.NewInvalidInputError("product_discount", "product_discount is not a valid percentage")
	}
	if d.LogFee, err = pricing.ParseOptionalPercentage(input.LogFeeDiscount); err != nil {
		return nil, apperror.NewInvalidInputError("log_fee_discount", "log_fee_discount is not a valid percentage")
	}
	if promo := trimmedOrNil(input.PromotionDiscount); promo != nil {
		pct, err := pricing.ParsePercentage(*promo)
		if err != nil {
			return nil, apperror.NewInvalidInputError("promotion_discount", "promotion_discount is not a valid percentage")
		}
		d.Promotion = &pct
	}

	b, err := pricing.Calculate(base, d)
	if err != nil {
		return nil, apperror.NewInvalidInputError("base_price", "base price must not be negative")
	}

	summary := b.Summary()
	return &summary, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return metrics.OutcomeStoreUnavailable
	}
	switch appErr.Kind {
	case apperror.KindNotFound:
		return metrics.OutcomeNotFound
	case apperror.KindMalformedValue:
		return metrics.OutcomeMalformedValue
	case apperror.KindInvalidInput:
		return metrics.OutcomeInvalidInput
	case apperror.KindAuditWriteFailed:
		return metrics.OutcomeAuditFailed
	default:
		return metrics.OutcomeStoreUnavailable
	}
}
