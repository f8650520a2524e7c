package handlers

import (
	"net/http"

	"github.com/GunarsK-portfolio/blog-service/internal/metrics"
	"github.com/GunarsK-portfolio/blog-service/internal/response"
	"github.com/GunarsK-portfolio/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// PostHandler handles post HTTP requests.
type PostHandler struct {
	posts   service.PostService
	metrics *metrics.Metrics
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(posts service.PostService, m *metrics.Metrics) *PostHandler {
	return &PostHandler{posts: posts, metrics: m}
}

// List godoc
// @Summary List published posts
// @Description Published posts, newest first, with author and categories
// @Tags posts
// @Produce json
// @Success 200 {array} PostView
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.ListPublished(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPostViews(posts))
}

// Get godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostView
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPostView(post))
}

// Create godoc
// @Summary Create a post
// @Description Creates a post owned by the caller. new_category is found by exact name or created.
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body service.CreatePostRequest true "Post"
// @Success 201 {object} PostView
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	post, err := h.posts.Create(c.Request.Context(), a, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("post", "create")
	c.JSON(http.StatusCreated, newPostView(post))
}

// Update godoc
// @Summary Update a post
// @Description Partial update by the author or an admin. category_ids replaces the category set.
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body service.UpdatePostRequest true "Changes"
// @Success 200 {object} PostView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondValidation(c, err)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), a, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("post", "update")
	c.JSON(http.StatusOK, newPostView(post))
}

// Delete godoc
// @Summary Delete a post
// @Description Deletes the post with its comments. Author or admin only.
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), a, id); err != nil {
		respondServiceError(c, err)
		return
	}
	h.metrics.RecordWrite("post", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
