package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"depresscare-server/internal/middleware"
	"depresscare-server/internal/models"
	"depresscare-server/internal/utils"
)

// PostHandler handles the community post surface.
type PostHandler struct {
	DB *gorm.DB
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{DB: db}
}

// GetPosts lists community posts with category/search filters and pagination.
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := h.DB.Model(&models.CommunityPost{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}

	order := "created_at desc"
	if c.Query("sortBy") == "oldest" {
		order = "created_at asc"
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to count posts: "+err.Error())
		return
	}

	var posts []models.CommunityPost
	err := query.Preload("Author").
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch posts: "+err.Error())
		return
	}

	utils.Success(c, "Posts fetched successfully", gin.H{
		"items": posts,
		"pagination": gin.H{
			"total":       count,
			"totalPages":  (count + int64(limit) - 1) / int64(limit),
			"currentPage": page,
			"perPage":     limit,
		},
	})
}

// GetPostByID returns one community post.
func (h *PostHandler) GetPostByID(c *gin.Context) {
	var post models.CommunityPost
	err := h.DB.Preload("Author").First(&post, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Post not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Post fetched successfully", post)
}

// CreatePostRequest represents the request body for creating a post.
type CreatePostRequest struct {
	Title      string `json:"title" binding:"required,max=255"`
	Category   string `json:"category"`
	Content    string `json:"content" binding:"required"`
	PictureURL string `json:"pictureUrl"`
}

// CreatePost publishes a community post authored by the caller.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreatePostRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	post := models.CommunityPost{
		PostedBy:   userID,
		Title:      req.Title,
		Category:   req.Category,
		Content:    req.Content,
		PictureURL: req.PictureURL,
	}
	if err := h.DB.Create(&post).Error; err != nil {
		utils.InternalServerError(c, "Failed to create post: "+err.Error())
		return
	}

	utils.Created(c, "Post created successfully", post)
}

// UpdatePostRequest represents the request body for updating a post.
type UpdatePostRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	Category   *string `json:"category"`
	Content    *string `json:"content"`
	PictureURL *string `json:"pictureUrl"`
}

// UpdatePost edits a post. Only the author or an admin may edit.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var req UpdatePostRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var post models.CommunityPost
	if err := h.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Post not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if post.PostedBy != userID && userRole != models.RoleAdmin {
		utils.Forbidden(c, "You are not authorized to edit this post")
		return
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.PictureURL != nil {
		post.PictureURL = *req.PictureURL
	}

	if err := h.DB.Save(&post).Error; err != nil {
		utils.InternalServerError(c, "Failed to update post: "+err.Error())
		return
	}

	utils.Success(c, "Post updated successfully", post)
}

// DeletePost removes a post. Only the author or an admin may delete.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var post models.CommunityPost
	if err := h.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Post not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if post.PostedBy != userID && userRole != models.RoleAdmin {
		utils.Forbidden(c, "You are not authorized to delete this post")
		return
	}

	if err := h.DB.Delete(&post).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete post: "+err.Error())
		return
	}

	utils.Success(c, "Post deleted successfully", nil)
}
