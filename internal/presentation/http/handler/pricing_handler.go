package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cospharm-api/internal/application/service"
	"github.com/sangkips/cospharm-api/internal/presentation/http/dto/request"
	"github.com/sangkips/cospharm-api/internal/presentation/http/dto/response"
)

// PricingHandler exposes price calculation and the audit trail
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// Calculate computes, audits and returns the price of a product
func (h *PricingHandler) Calculate(c *gin.Context) {
	var req request.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	calc, err := h.pricingService.CalculatePrice(c.Request.Context(), &service.CalculatePriceInput{
		ProductID:    req.ProductID,
		CustomerID:   req.CustomerID,
		AsOf:         req.AsOf,
		CalculatedBy: actor(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price calculated successfully", calc)
}

// Preview runs the discount engine over supplied values without auditing
func (h *PricingHandler) Preview(c *gin.Context) {
	var req request.PreviewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.pricingService.Preview(&service.PreviewInput{
		BasePrice:         req.BasePrice,
		ProductDiscount:   req.ProductDiscount,
		PromotionDiscount: req.PromotionDiscount,
		LogFeeDiscount:    req.LogFeeDiscount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price preview calculated", summary)
}

// ListAudits returns the most recent calculations
func (h *PricingHandler) ListAudits(c *gin.Context) {
	audits, err := h.pricingService.ListRecentAudits(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pricing audits retrieved successfully", audits)
}

// ListProductAudits returns the most recent calculations of one product
func (h *PricingHandler) ListProductAudits(c *gin.Context) {
	audits, err := h.pricingService.ListProductAudits(c.Request.Context(), c.Param("id"), queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pricing audits retrieved successfully", audits)
}
