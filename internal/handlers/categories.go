package handlers

import (
	"net/http"

	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categories service.CategoryService
	metrics    *metrics.Metrics
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(categories service.CategoryService, m *metrics.Metrics) *CategoryHandler {
	return &CategoryHandler{categories: categories, metrics: m}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Create a category
// @Description Moderator or admin
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.CategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("category", "create")
	c.JSON(http.StatusCreated, category)
}

// Update godoc
// @Summary Rename a category
// @Description Moderator or admin
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body service.CategoryRequest true "Category"
// @Success 200 {object} models.Category
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("category", "update")
	c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Description Admin only. Posts keep existing without the category.
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("category", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
