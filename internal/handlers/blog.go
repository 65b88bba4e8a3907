package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/utils"
	"gorm.io/gorm"
)

type BlogResponse struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"created_at"`
	Published bool            `json:"published"`
	Images    []ImageResponse `json:"images"`
}

type BlogCommentResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	BlogID    uint   `json:"blog_id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type CreateBlogCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func newBlogResponse(b *models.Blog) BlogResponse {
	return BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		Published: b.Published,
		Images:    newImageResponses(b.Images),
	}
}

func newBlogCommentResponse(c *models.BlogComment) BlogCommentResponse {
	return BlogCommentResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		UserName:  c.User.FullName(),
		BlogID:    c.BlogID,
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ListBlogs(ctx *gin.Context) {
	var blogs []models.Blog

	if err := db.DB.Preload("Images").Where("published = ?", true).Order("created_at DESC").Find(&blogs).Error; err != nil {
		log.Printf("Failed to list blogs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]BlogResponse, 0, len(blogs))

	for i := range blogs {
		response = append(response, newBlogResponse(&blogs[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetBlog(ctx *gin.Context) {
	var blog models.Blog

	err := db.DB.Preload("Images").Preload("Comments.User").
		Where("slug = ? AND published = ?", ctx.Param("slug"), true).
		First(&blog).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		} else {
			log.Printf("Failed to fetch blog: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	comments := make([]BlogCommentResponse, 0, len(blog.Comments))

	for i := range blog.Comments {
		comments = append(comments, newBlogCommentResponse(&blog.Comments[i]))
	}

	response := newBlogResponse(&blog)

	ctx.JSON(http.StatusOK, gin.H{
		"blog":     response,
		"comments": comments,
	})
}

func CreateBlogComment(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateBlogCommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var blog models.Blog

	if err := db.DB.Where("slug = ? AND published = ?", ctx.Param("slug"), true).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		} else {
			log.Printf("Failed to fetch blog: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	comment := models.BlogComment{
		UserID:  userID,
		BlogID:  blog.ID,
		Comment: body.Comment,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("User").First(&comment, comment.ID).Error; err != nil {
		log.Printf("Failed to refresh comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, newBlogCommentResponse(&comment))
}

// uniqueSlug derives a slug from the title, suffixing a counter on
// collision.
func uniqueSlug(tx *gorm.DB, title string, excludeID uint) (string, error) {
	base := slug.Make(title)
	candidate := base

	for i := 2; ; i++ {
		var count int64

		query := tx.Model(&models.Blog{}).Where("slug = ?", candidate)

		if excludeID != 0 {
			query = query.Where("id != ?", excludeID)
		}

		if err := query.Count(&count).Error; err != nil {
			return "", err
		}

		if count == 0 {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func AdminListBlogs(ctx *gin.Context) {
	var blogs []models.Blog

	if err := db.DB.Preload("Images").Order("created_at DESC").Find(&blogs).Error; err != nil {
		log.Printf("Failed to list blogs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]BlogResponse, 0, len(blogs))

	for i := range blogs {
		response = append(response, newBlogResponse(&blogs[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func AdminCreateBlog(ctx *gin.Context) {
	title := ctx.PostForm("title")

	if title == "" {
		fieldError(ctx, "title", "Title is required")
		return
	}

	form, _ := ctx.MultipartForm()
	files, _ := formFiles(form, "image_files")

	blog := models.Blog{
		Title:     title,
		Content:   ctx.PostForm("content"),
		Published: ctx.PostForm("published") == "true",
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		blogSlug, err := uniqueSlug(tx, title, 0)

		if err != nil {
			return err
		}

		blog.Slug = blogSlug

		if err := tx.Create(&blog).Error; err != nil {
			return err
		}

		return createImages(tx, files, func(img *models.Image) { img.BlogID = &blog.ID })
	})

	if err != nil {
		log.Printf("Failed to create blog: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&blog, blog.ID).Error; err != nil {
		log.Printf("Failed to refresh blog: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, newBlogResponse(&blog))
}

// AdminUpdateBlog updates blog fields; the slug never changes from the
// payload. When image_files is present the attached set is replaced
// wholesale.
func AdminUpdateBlog(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var blog models.Blog

	if err := db.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		} else {
			log.Printf("Failed to fetch blog: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if title := ctx.PostForm("title"); title != "" {
		blog.Title = title
	}
	if content, ok := ctx.GetPostForm("content"); ok {
		blog.Content = content
	}
	if published, ok := ctx.GetPostForm("published"); ok {
		blog.Published = published == "true"
	}

	form, _ := ctx.MultipartForm()
	files, hasFiles := formFiles(form, "image_files")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&blog).Error; err != nil {
			return err
		}

		if hasFiles {
			return replaceImages(tx, "blog_id", blog.ID, files, func(img *models.Image) { img.BlogID = &blog.ID })
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to update blog: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&blog, blog.ID).Error; err != nil {
		log.Printf("Failed to refresh blog: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, newBlogResponse(&blog))
}

func AdminDeleteBlog(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var blog models.Blog

	if err := db.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		} else {
			log.Printf("Failed to fetch blog: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&blog).Error; err != nil {
		log.Printf("Failed to delete blog: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
