package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/events"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"gorm.io/gorm"
)

type EventResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Date        string          `json:"date"`
	IsActive    bool            `json:"is_active"`
	Images      []ImageResponse `json:"images"`
}

func newEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date.Format(time.RFC3339),
		IsActive:    e.IsActive,
		Images:      newImageResponses(e.Images),
	}
}

func eventListResponse(ctx *gin.Context, list []models.Event, err error) {
	if err != nil {
		log.Printf("Failed to list events: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]EventResponse, 0, len(list))

	for i := range list {
		response = append(response, newEventResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func ListEvents(ctx *gin.Context) {
	var list []models.Event

	err := db.DB.Preload("Images").Order("date DESC").Find(&list).Error

	eventListResponse(ctx, list, err)
}

// UpcomingEvents sweeps stale activity flags before reading, so the
// listing never shows a past event as upcoming.
func UpcomingEvents(ctx *gin.Context) {
	list, err := events.Upcoming(db.DB, time.Now())

	eventListResponse(ctx, list, err)
}

func PastEvents(ctx *gin.Context) {
	list, err := events.Past(db.DB, time.Now())

	eventListResponse(ctx, list, err)
}

func GetEvent(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var event models.Event

	if err := db.DB.Preload("Images").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			log.Printf("Failed to fetch event: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, newEventResponse(&event))
}

func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return parseDate(value)
}

func AdminCreateEvent(ctx *gin.Context) {
	title := ctx.PostForm("title")

	if title == "" {
		fieldError(ctx, "title", "Title is required")
		return
	}

	date, err := parseEventDate(ctx.PostForm("date"))

	if err != nil {
		fieldError(ctx, "date", "Date must be RFC3339 or YYYY-MM-DD")
		return
	}

	form, _ := ctx.MultipartForm()
	files, _ := formFiles(form, "image_files")

	event := models.Event{
		Title:       title,
		Description: ctx.PostForm("description"),
		Location:    ctx.PostForm("location"),
		Date:        date,
		IsActive:    date.After(time.Now()),
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return createImages(tx, files, func(img *models.Image) { img.EventID = &event.ID })
	})

	if err != nil {
		log.Printf("Failed to create event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&event, event.ID).Error; err != nil {
		log.Printf("Failed to refresh event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, newEventResponse(&event))
}

func AdminUpdateEvent(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var event models.Event

	if err := db.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			log.Printf("Failed to fetch event: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if title := ctx.PostForm("title"); title != "" {
		event.Title = title
	}
	if description, ok := ctx.GetPostForm("description"); ok {
		event.Description = description
	}
	if location, ok := ctx.GetPostForm("location"); ok {
		event.Location = location
	}
	if dateValue, ok := ctx.GetPostForm("date"); ok {
		date, err := parseEventDate(dateValue)

		if err != nil {
			fieldError(ctx, "date", "Date must be RFC3339 or YYYY-MM-DD")
			return
		}

		event.Date = date
		event.IsActive = date.After(time.Now())
	}

	form, _ := ctx.MultipartForm()
	files, hasFiles := formFiles(form, "image_files")

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return err
		}

		if hasFiles {
			return replaceImages(tx, "event_id", event.ID, files, func(img *models.Image) { img.EventID = &event.ID })
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to update event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.Preload("Images").First(&event, event.ID).Error; err != nil {
		log.Printf("Failed to refresh event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, newEventResponse(&event))
}

func AdminDeleteEvent(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var event models.Event

	if err := db.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			log.Printf("Failed to fetch event: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&event).Error; err != nil {
		log.Printf("Failed to delete event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
