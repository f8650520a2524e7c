package handlers

import (
	"net/http"

	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	comments service.CommentService
	metrics  *metrics.Metrics
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(comments service.CommentService, m *metrics.Metrics) *CommentHandler {
	return &CommentHandler{comments: comments, metrics: m}
}

// ListByPost godoc
// @Summary List comments of a post
// @Description Visible comments only, oldest first
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} CommentView
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := h.comments.ListVisible(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCommentViews(comments))
}

// Create godoc
// @Summary Comment on a post
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body service.CommentRequest true "Comment"
// @Success 201 {object} CommentView
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), a, postID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("comment", "create")
	c.JSON(http.StatusCreated, newCommentView(comment))
}

// Update godoc
// @Summary Edit a comment
// @Description Author, moderator or admin
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body service.CommentRequest true "Comment"
// @Success 200 {object} CommentView
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), a, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("comment", "update")
	c.JSON(http.StatusOK, newCommentView(comment))
}

// Delete godoc
// @Summary Delete a comment
// @Description Author, moderator or admin
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), a, id); err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("comment", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// SetVisibility godoc
// @Summary Hide or restore a comment
// @Description Moderator or admin
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body service.CommentVisibilityRequest true "Visibility"
// @Success 200 {object} CommentView
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id}/visibility [patch]
func (h *CommentHandler) SetVisibility(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CommentVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	comment, err := h.comments.SetVisibility(c.Request.Context(), id, *req.Visible)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("comment", "moderate")
	c.JSON(http.StatusOK, newCommentView(comment))
}
