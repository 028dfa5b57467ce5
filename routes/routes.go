package routes

import (
	"net/http"
	"teroka-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		// Rute katalog UMKM
		api.GET("/umkm", ctrl.GetUmkmList)
		api.GET("/umkm/:id", ctrl.GetUmkmDetail)
		api.POST("/umkm", ctrl.CreateUmkm)
		api.PUT("/umkm", ctrl.UpdateUmkm)    // ?id=
		api.DELETE("/umkm", ctrl.DeleteUmkm) // ?id=

		// Rute pendaftaran UMKM (multipart form + gambar)
		api.POST("/register", ctrl.Register)
		api.POST("/register/validate", ctrl.ValidateRegistration)

		// Rute produk
		api.GET("/products", ctrl.GetProducts) // ?umkm_id=
		api.POST("/products", ctrl.CreateProduct)
		api.PUT("/products", ctrl.UpdateProduct)    // ?id=
		api.DELETE("/products", ctrl.DeleteProduct) // ?id=

		// Rute review
		api.GET("/reviews", ctrl.GetReviews) // ?umkm_id=
		api.POST("/reviews", ctrl.CreateReview)
		api.PUT("/reviews", ctrl.UpdateReview)    // ?id=
		api.DELETE("/reviews", ctrl.DeleteReview) // ?id=

		// Rute unggah berkas tunggal
		api.POST("/upload", ctrl.UploadImage)

		// Rute data wilayah Indonesia
		api.GET("/wilayah/provinces", ctrl.GetProvinces)
		api.GET("/wilayah/regencies/:provinceId", ctrl.GetRegencies)
		api.GET("/wilayah/districts/:regencyId", ctrl.GetDistricts)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
