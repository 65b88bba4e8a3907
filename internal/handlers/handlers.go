package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/internal/config"
	"github.com/suhrawardy-med/lifeline/internal/mailer"
	"github.com/suhrawardy-med/lifeline/internal/types"
)

var (
	cfg  *config.Config
	mail *mailer.Mailer
)

// Init wires the shared dependencies before routes are registered.
func Init(c *config.Config, m *mailer.Mailer) {
	cfg = c
	mail = m
}

func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}

	return uint(id), true
}

// fieldError is the serializer-style 400 body naming the offending field.
func fieldError(ctx *gin.Context, field, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{field: message}})
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(types.DateLayout, value)
}
