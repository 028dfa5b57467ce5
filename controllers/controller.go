// File: controllers/controller.go
package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"teroka-backend/models"
	"teroka-backend/registration"
	"teroka-backend/storage"
	"teroka-backend/wilayah"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Pastikan field diawali huruf besar agar bisa diakses dari package lain.
type Controller struct {
	DB       *mongo.Database
	Storage  *storage.Cloudinary
	Wilayah  *wilayah.Client
	Pipeline *registration.Pipeline
}

// New merangkai controller beserta pipeline pendaftarannya; controller
// sendiri bertindak sebagai Recorder pipeline.
func New(db *mongo.Database, store *storage.Cloudinary, wil *wilayah.Client) *Controller {
	ctrl := &Controller{DB: db, Storage: store, Wilayah: wil}
	ctrl.Pipeline = registration.NewPipeline(store, ctrl)
	return ctrl
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, models.APIResponse{Success: true, Data: data, Message: message})
}

func respondWithTotal(c *gin.Context, status int, data any, message string, total int) {
	c.JSON(status, models.APIResponse{Success: true, Data: data, Message: message, Total: &total})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{Success: false, Data: nil, Message: message})
}

// isUnauthorizedWrite mendeteksi penolakan tulis oleh server database
// karena kredensial tidak punya hak tulis (mis. user Atlas read-only).
func isUnauthorizedWrite(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && (cmdErr.Code == 13 || cmdErr.HasErrorLabel("Unauthorized")) {
		return true
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == 13 {
				return true
			}
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not authorized") || strings.Contains(msg, "unauthorized")
}
