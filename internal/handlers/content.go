package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/storage"
	"gorm.io/gorm"
)

// About and TeamMember take multipart payloads because they carry image
// attachments; the other content sections go through the generic JSON CRUD.

func AdminCreateAbout(ctx *gin.Context) {
	title := ctx.PostForm("title")

	if title == "" {
		fieldError(ctx, "title", "Title is required")
		return
	}

	years, _ := strconv.ParseUint(ctx.PostForm("years_experience"), 10, 32)

	about := models.About{
		Title:            title,
		Description:      ctx.PostForm("description"),
		YearsExperience:  uint(years),
		PatientsServed:   ctx.PostForm("patients_served"),
		SatisfactionRate: ctx.PostForm("satisfaction_rate"),
	}

	form, _ := ctx.MultipartForm()
	files, _ := formFiles(form, "image_files")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&about).Error; err != nil {
			return err
		}

		return createImages(tx, files, func(img *models.Image) { img.AboutID = &about.ID })
	})

	if err != nil {
		log.Printf("Failed to create about section: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&about, about.ID).Error; err != nil {
		log.Printf("Failed to refresh about section: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, about)
}

func AdminUpdateAbout(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var about models.About

	if err := db.DB.First(&about, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			log.Printf("Failed to fetch about section: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if title := ctx.PostForm("title"); title != "" {
		about.Title = title
	}
	if description, ok := ctx.GetPostForm("description"); ok {
		about.Description = description
	}
	if years, ok := ctx.GetPostForm("years_experience"); ok {
		value, _ := strconv.ParseUint(years, 10, 32)
		about.YearsExperience = uint(value)
	}
	if served, ok := ctx.GetPostForm("patients_served"); ok {
		about.PatientsServed = served
	}
	if rate, ok := ctx.GetPostForm("satisfaction_rate"); ok {
		about.SatisfactionRate = rate
	}

	form, _ := ctx.MultipartForm()
	files, hasFiles := formFiles(form, "image_files")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&about).Error; err != nil {
			return err
		}

		if hasFiles {
			return replaceImages(tx, "about_id", about.ID, files, func(img *models.Image) { img.AboutID = &about.ID })
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to update about section: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&about, about.ID).Error; err != nil {
		log.Printf("Failed to refresh about section: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, about)
}

func AdminCreateTeamMember(ctx *gin.Context) {
	name := ctx.PostForm("name")

	if name == "" {
		fieldError(ctx, "name", "Name is required")
		return
	}

	member := models.TeamMember{
		Name:      name,
		Role:      ctx.PostForm("role"),
		Specialty: ctx.PostForm("specialty"),
	}

	form, _ := ctx.MultipartForm()
	files, _ := formFiles(form, "image_files")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		return createImages(tx, files, func(img *models.Image) { img.TeamMemberID = &member.ID })
	})

	if err != nil {
		log.Printf("Failed to create team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&member, member.ID).Error; err != nil {
		log.Printf("Failed to refresh team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

func AdminUpdateTeamMember(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var member models.TeamMember

	if err := db.DB.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			log.Printf("Failed to fetch team member: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if name := ctx.PostForm("name"); name != "" {
		member.Name = name
	}
	if role, ok := ctx.GetPostForm("role"); ok {
		member.Role = role
	}
	if specialty, ok := ctx.GetPostForm("specialty"); ok {
		member.Specialty = specialty
	}

	form, _ := ctx.MultipartForm()
	files, hasFiles := formFiles(form, "image_files")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		if hasFiles {
			return replaceImages(tx, "team_member_id", member.ID, files, func(img *models.Image) { img.TeamMemberID = &member.ID })
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to update team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&member, member.ID).Error; err != nil {
		log.Printf("Failed to refresh team member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

func AdminCreateDocument(ctx *gin.Context) {
	file, err := ctx.FormFile("file")

	if err != nil {
		fieldError(ctx, "file", "File is required")
		return
	}

	path, err := storage.Save(file, cfg.MediaRoot, "documents")

	if err != nil {
		log.Printf("Failed to store document: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	document := models.PDFDocument{
		File:        path,
		Description: ctx.PostForm("description"),
	}

	if err := db.DB.Create(&document).Error; err != nil {
		log.Printf("Failed to create document: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, document)
}

func AdminDeleteDocument(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var document models.PDFDocument

	if err := db.DB.First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			log.Printf("Failed to fetch document: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&document).Error; err != nil {
		log.Printf("Failed to delete document: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := storage.Remove(cfg.MediaRoot, document.File); err != nil {
		log.Printf("Failed to remove document file: %v", err)
	}

	ctx.Status(http.StatusNoContent)
}
