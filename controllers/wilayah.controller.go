// File: controllers/wilayah.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetProvinces menangani pengambilan daftar provinsi. Klien wilayah
// sudah punya daftar statis cadangan, jadi endpoint ini selalu berhasil.
func (ctrl *Controller) GetProvinces(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	provinces, err := ctrl.Wilayah.Provinces(ctx)
	if err != nil {
		log.Println("Wilayah error:", err)
		respondError(c, http.StatusBadGateway, "Gagal memuat data provinsi")
		return
	}
	respondWithTotal(c, http.StatusOK, provinces, "Data berhasil dimuat", len(provinces))
}

// GetRegencies menangani pengambilan kota/kabupaten per provinsi.
func (ctrl *Controller) GetRegencies(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	provinceID := c.Param("provinceId")
	regencies, err := ctrl.Wilayah.Regencies(ctx, provinceID)
	if err != nil {
		log.Println("Wilayah error:", err)
		respondError(c, http.StatusBadGateway, "Gagal memuat data kota/kabupaten")
		return
	}
	respondWithTotal(c, http.StatusOK, regencies, "Data berhasil dimuat", len(regencies))
}

// GetDistricts menangani pengambilan kecamatan per kota/kabupaten.
func (ctrl *Controller) GetDistricts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	regencyID := c.Param("regencyId")
	districts, err := ctrl.Wilayah.Districts(ctx, regencyID)
	if err != nil {
		log.Println("Wilayah error:", err)
		respondError(c, http.StatusBadGateway, "Gagal memuat data kecamatan")
		return
	}
	respondWithTotal(c, http.StatusOK, districts, "Data berhasil dimuat", len(districts))
}
