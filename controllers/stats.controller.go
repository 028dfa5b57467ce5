// File: controllers/stats.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"teroka-backend/models"
)

// HealthCheck memeriksa status koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"storage":   ctrl.Storage.Configured(),
		"timestamp": time.Now().Unix(),
	})
}

// GetStats mengambil data statistik dari aplikasi.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalUmkm, err := ctrl.DB.Collection("umkm").CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat statistik")
		return
	}
	totalProducts, err := ctrl.DB.Collection("products").CountDocuments(ctx, bson.M{"is_available": true})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat statistik")
		return
	}
	totalReviews, err := ctrl.DB.Collection("reviews").CountDocuments(ctx, bson.M{})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat statistik")
		return
	}

	stats := models.Stats{
		TotalUmkm:     totalUmkm,
		TotalProducts: totalProducts,
		TotalReviews:  totalReviews,
	}
	respond(c, http.StatusOK, stats, "Statistik berhasil dimuat")
}
