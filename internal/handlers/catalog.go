package handlers

import (
	"errors"
	"log"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/db"
	"gorm.io/gorm"
)

// The catalog entities share one CRUD shape (the models carry their own
// json and binding tags), so the handlers are generic over the model type
// the way the original exposed them through generic list/create views.

func ListAll[T any](preloads ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := db.DB

		for _, preload := range preloads {
			query = query.Preload(preload)
		}

		var items []T

		if err := query.Find(&items).Error; err != nil {
			log.Printf("Failed to list records: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.JSON(http.StatusOK, items)
	}
}

func GetByID[T any](preloads ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := paramID(ctx, "id")

		if !ok {
			return
		}

		query := db.DB

		for _, preload := range preloads {
			query = query.Preload(preload)
		}

		var item T

		if err := query.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				log.Printf("Failed to fetch record: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		ctx.JSON(http.StatusOK, item)
	}
}

func CreateRecord[T any]() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var item T

		if err := ctx.BindJSON(&item); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if err := db.DB.Create(&item).Error; err != nil {
			log.Printf("Failed to create record: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.JSON(http.StatusCreated, item)
	}
}

func UpdateRecord[T any]() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := paramID(ctx, "id")

		if !ok {
			return
		}

		var item T

		if err := db.DB.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				log.Printf("Failed to fetch record: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		if err := ctx.BindJSON(&item); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		// The payload must not move the record to another id.
		reflect.ValueOf(&item).Elem().FieldByName("ID").SetUint(uint64(id))

		if err := db.DB.Save(&item).Error; err != nil {
			log.Printf("Failed to update record: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.JSON(http.StatusOK, item)
	}
}

func DeleteRecord[T any]() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := paramID(ctx, "id")

		if !ok {
			return
		}

		var item T

		if err := db.DB.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				log.Printf("Failed to fetch record: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		if err := db.DB.Delete(&item).Error; err != nil {
			log.Printf("Failed to delete record: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.Status(http.StatusNoContent)
	}
}
