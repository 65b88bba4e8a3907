package handlers

import (
	"mime/multipart"

	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/storage"
	"gorm.io/gorm"
)

type ImageResponse struct {
	ID    uint   `json:"id"`
	Image string `json:"image"`
}

func newImageResponses(images []models.Image) []ImageResponse {
	response := make([]ImageResponse, 0, len(images))

	for _, img := range images {
		response = append(response, ImageResponse{ID: img.ID, Image: img.Path})
	}

	return response
}

// formFiles returns the uploads under the given multipart field, and
// whether the field was present at all. Absence means "leave attachments
// alone" on update; an empty present field clears them.
func formFiles(form *multipart.Form, field string) ([]*multipart.FileHeader, bool) {
	if form == nil {
		return nil, false
	}

	files, ok := form.File[field]

	return files, ok
}

// createImages stores each upload and inserts a row linked through assign.
func createImages(tx *gorm.DB, files []*multipart.FileHeader, assign func(*models.Image)) error {
	for _, file := range files {
		path, err := storage.Save(file, cfg.MediaRoot, "images")

		if err != nil {
			return err
		}

		img := models.Image{Path: path}
		assign(&img)

		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}

	return nil
}

// replaceImages implements the delete-then-insert replacement of the whole
// attached set; it is not a merge.
func replaceImages(tx *gorm.DB, ownerColumn string, ownerID uint, files []*multipart.FileHeader, assign func(*models.Image)) error {
	if err := tx.Unscoped().Where(ownerColumn+" = ?", ownerID).Delete(&models.Image{}).Error; err != nil {
		return err
	}

	return createImages(tx, files, assign)
}
