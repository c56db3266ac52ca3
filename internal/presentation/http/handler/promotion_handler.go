package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/cospharm-api/internal/application/service"
	"github.com/sangkips/cospharm-api/internal/presentation/http/dto/request"
	"github.com/sangkips/cospharm-api/internal/presentation/http/dto/response"
	"github.com/sangkips/cospharm-api/pkg/pagination"
)

// PromotionHandler handles promotion calendar requests
type PromotionHandler struct {
	promotionService *service.PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(promotionService *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// List handles listing promotions
func (h *PromotionHandler) List(c *gin.Context) {
	params := &pagination.PaginationParams{
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 15),
	}

	result, err := h.promotionService.ListPromotions(c.Request.Context(), params, c.Query("active_only") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Promotions retrieved successfully", result)
}

// Get handles getting a single promotion
func (h *PromotionHandler) Get(c *gin.Context) {
	promotion, err := h.promotionService.GetPromotion(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Promotion retrieved successfully", promotion)
}

// Create handles promotion creation
func (h *PromotionHandler) Create(c *gin.Context) {
	var req request.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	promotion, err := h.promotionService.CreatePromotion(c.Request.Context(), &service.CreatePromotionInput{
		Name:          req.Name,
		Description:   req.Description,
		PromotionType: req.PromotionType,
		DiscountValue: req.DiscountValue,
		BonusPattern:  req.BonusPattern,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Active:        req.Active,
		Priority:      req.Priority,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Promotion created successfully", promotion)
}

// Delete removes a promotion
func (h *PromotionHandler) Delete(c *gin.Context) {
	if err := h.promotionService.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
